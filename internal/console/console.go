package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

const separator = "-------------------------------------"

// errExit encerra o loop do menu (opção 5 ou fim da entrada).
var errExit = errors.New("exit")

// Console é o menu de texto sobre um Hotel em processo.
type Console struct {
	hotel *reservation.Hotel
	in    *bufio.Scanner
	out   io.Writer
}

func New(hotel *reservation.Hotel, in io.Reader, out io.Writer) *Console {
	return &Console{hotel: hotel, in: bufio.NewScanner(in), out: out}
}

// Run mostra o menu até o usuário sair, a entrada acabar ou ctx terminar.
func (c *Console) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.printMenu()
		choice, err := c.prompt("Select an option: ")
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.viewAvailableRooms(ctx)
		case "2":
			err = c.makeReservation(ctx)
		case "3":
			err = c.cancelReservation(ctx)
		case "4":
			err = c.listReservations(ctx)
		case "5":
			return nil
		default:
			c.println("Invalid option. Please try again.")
		}

		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			c.println("Error: " + err.Error())
		}
		c.println("")
	}
}

func (c *Console) printMenu() {
	c.println("=== Hotel Reservation System ===")
	c.println("1. View Available Rooms")
	c.println("2. Make Reservation")
	c.println("3. Cancel Reservation")
	c.println("4. List All Reservations")
	c.println("5. Exit")
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errExit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptDates() (reservation.Date, reservation.Date, error) {
	rawIn, err := c.prompt("Enter Check-In Date (yyyy-mm-dd): ")
	if err != nil {
		return reservation.Date{}, reservation.Date{}, err
	}
	checkIn, err := reservation.ParseDate(rawIn)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, err
	}
	rawOut, err := c.prompt("Enter Check-Out Date (yyyy-mm-dd): ")
	if err != nil {
		return reservation.Date{}, reservation.Date{}, err
	}
	checkOut, err := reservation.ParseDate(rawOut)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, err
	}
	return checkIn, checkOut, nil
}

// printAvailable lista os quartos livres e informa se havia algum.
func (c *Console) printAvailable(ctx context.Context, checkIn, checkOut reservation.Date) (bool, error) {
	rooms, err := c.hotel.GetAvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	if len(rooms) == 0 {
		c.println("No available rooms for the selected dates.")
		return false, nil
	}
	c.println("Available Rooms:")
	for _, room := range rooms {
		c.println(room.String())
	}
	return true, nil
}

func (c *Console) viewAvailableRooms(ctx context.Context) error {
	checkIn, checkOut, err := c.promptDates()
	if err != nil {
		return err
	}
	_, err = c.printAvailable(ctx, checkIn, checkOut)
	return err
}

func (c *Console) makeReservation(ctx context.Context) error {
	var guest reservation.Guest
	var err error
	if guest.Name, err = c.prompt("Enter Guest Name: "); err != nil {
		return err
	}
	if guest.Email, err = c.prompt("Enter Guest Email: "); err != nil {
		return err
	}
	if guest.Phone, err = c.prompt("Enter Guest Phone: "); err != nil {
		return err
	}

	checkIn, checkOut, err := c.promptDates()
	if err != nil {
		return err
	}
	found, err := c.printAvailable(ctx, checkIn, checkOut)
	if err != nil || !found {
		return err
	}

	rawRoom, err := c.prompt("Enter Room Number to reserve: ")
	if err != nil {
		return err
	}
	roomNumber, err := strconv.Atoi(rawRoom)
	if err != nil {
		return fmt.Errorf("invalid room number %q", rawRoom)
	}

	res, err := c.hotel.MakeReservation(ctx, guest, roomNumber, checkIn, checkOut)
	if err != nil {
		return err
	}
	c.println("Reservation successful!")
	c.println("Reservation Details:")
	c.printReservation(res)
	return nil
}

func (c *Console) cancelReservation(ctx context.Context) error {
	raw, err := c.prompt("Enter Reservation ID to cancel: ")
	if err != nil {
		return err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.println("Invalid Reservation ID format.")
		return nil
	}

	ok, err := c.hotel.CancelReservation(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		c.println("Reservation canceled successfully.")
	} else {
		c.println("Reservation not found.")
	}
	return nil
}

func (c *Console) listReservations(ctx context.Context) error {
	list, err := c.hotel.ListReservations(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		c.println("No reservations found.")
		return nil
	}
	for _, res := range list {
		c.printReservation(res)
		c.println(separator)
	}
	return nil
}

func (c *Console) printReservation(res reservation.Reservation) {
	fmt.Fprintf(c.out, "Reservation ID: %s\n", res.ID)
	fmt.Fprintf(c.out, "Guest: %s\n", res.Guest.Name)
	fmt.Fprintf(c.out, "Room: %d (%s)\n", res.Room.Number, res.Room.Type)
	fmt.Fprintf(c.out, "Check-In: %s\n", res.CheckIn)
	fmt.Fprintf(c.out, "Check-Out: %s\n", res.CheckOut)
	fmt.Fprintf(c.out, "Total: $%g (%d nights)\n", res.Total(), res.Nights())
}
