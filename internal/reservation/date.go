package reservation

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout é o formato textual das datas ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Date é uma data de calendário sem hora do dia. O valor interno é sempre
// meia-noite UTC, então comparações nunca dependem de fuso ou horário.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta a hora de t, usando o dia do calendário na location de t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil retorna o número de dias de d até o (negativo se o vem antes).
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange é o intervalo semiaberto [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  Date
	CheckOut Date
}

// Validate exige CheckIn estritamente antes de CheckOut.
func (r DateRange) Validate() error {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() || !r.CheckIn.Before(r.CheckOut) {
		return fmt.Errorf("%w: check-in %s, check-out %s", ErrInvalidDateRange, r.CheckIn, r.CheckOut)
	}
	return nil
}

// Overlaps aplica a regra a1 < b2 && b1 < a2; datas de fronteira iguais não conflitam.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.CheckIn.Before(o.CheckOut) && o.CheckIn.Before(r.CheckOut)
}

func (r DateRange) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.CheckIn, r.CheckOut)
}
