package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/logger"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/mq"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/rpc"
)

// Client é o que o benchmark exige de cada middleware.
type Client interface {
	ListAvailable(ctx context.Context, checkIn, checkOut string) error
	CreateReservation(ctx context.Context, room int, checkIn, checkOut string) error
	CancelReservation(ctx context.Context, reservationID string) error
	Close() error
}

type grpcClient struct{ c *rpc.Client }

func (g grpcClient) ListAvailable(ctx context.Context, checkIn, checkOut string) error {
	_, err := g.c.ListAvailable(ctx, &rpc.ListAvailableRequest{CheckIn: checkIn, CheckOut: checkOut})
	return err
}

func (g grpcClient) CreateReservation(ctx context.Context, room int, checkIn, checkOut string) error {
	_, err := g.c.CreateReservation(ctx, &rpc.CreateReservationRequest{
		Guest:      rpc.Guest{Name: "Benchmark"},
		RoomNumber: room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	return err
}

func (g grpcClient) CancelReservation(ctx context.Context, reservationID string) error {
	_, err := g.c.CancelReservation(ctx, &rpc.CancelReservationRequest{ReservationID: reservationID})
	return err
}

func (g grpcClient) Close() error { return g.c.Close() }

type mqClient struct{ c *mq.Client }

func (m mqClient) ListAvailable(ctx context.Context, checkIn, checkOut string) error {
	_, err := m.c.ListAvailable(ctx, checkIn, checkOut)
	return err
}

func (m mqClient) CreateReservation(ctx context.Context, room int, checkIn, checkOut string) error {
	_, err := m.c.CreateReservation(ctx, mq.CreateReservationPayload{
		GuestName:  "Benchmark",
		RoomNumber: room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	return err
}

func (m mqClient) CancelReservation(ctx context.Context, reservationID string) error {
	_, err := m.c.CancelReservation(ctx, reservationID)
	return err
}

func (m mqClient) Close() error { return m.c.Close() }

// stay devolve uma diária começando offset dias depois de base.
func stay(base reservation.Date, offset int) (string, string) {
	in := base.AddDays(offset)
	return in.String(), in.AddDays(1).String()
}

var roomNumbers = []int{101, 102, 103, 104, 105}

func executeOperation(ctx context.Context, client Client, operation string, base reservation.Date, reqID int) error {
	switch operation {
	case "ListAvailable":
		in, out := stay(base, reqID%30)
		return client.ListAvailable(ctx, in, out)
	case "CreateReservation":
		// cada requisição usa um par quarto/noite diferente
		in, out := stay(base, reqID/len(roomNumbers))
		return client.CreateReservation(ctx, roomNumbers[reqID%len(roomNumbers)], in, out)
	case "CancelReservation":
		return client.CancelReservation(ctx, uuid.NewString())
	default:
		return fmt.Errorf("unknown operation: %s", operation)
	}
}

func runPerformanceTest(ctx context.Context, client Client, middleware, operation string, base reservation.Date, totalRequests, concurrency int) BenchmarkResult {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	metrics := NewMetrics(totalRequests)
	var next atomic.Int64
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < concurrency; w++ {
		g.Go(func() error {
			for {
				reqID := int(next.Add(1)) - 1
				if reqID >= totalRequests || gctx.Err() != nil {
					return nil
				}
				reqStart := time.Now()
				err := executeOperation(gctx, client, operation, base, reqID)
				metrics.Record(time.Since(reqStart), err)
			}
		})
	}
	_ = g.Wait()

	result := metrics.Result(time.Since(start))
	result.Operation = operation
	result.Middleware = middleware
	return result
}

type BusinessFactorResult struct {
	Middleware    string
	Scenario      string
	TotalRequests int
	SuccessCount  int
	SuccessRate   float64
	ExpectedMax   int
}

// runBusinessFactorTest dispara reservas concorrentes. Com sameResource
// todas disputam o mesmo quarto e a mesma noite, e só uma pode vencer.
func runBusinessFactorTest(ctx context.Context, client Client, middleware string, base reservation.Date, sameResource bool) BusinessFactorResult {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	const totalRequests = 200
	const concurrency = 20

	var successCount atomic.Int64
	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < concurrency; w++ {
		g.Go(func() error {
			for {
				reqID := int(next.Add(1)) - 1
				if reqID >= totalRequests {
					return nil
				}
				room := roomNumbers[0]
				in, out := stay(base, 0)
				if !sameResource {
					room = roomNumbers[reqID%len(roomNumbers)]
					in, out = stay(base, reqID/len(roomNumbers))
				}
				if err := client.CreateReservation(gctx, room, in, out); err == nil {
					successCount.Add(1)
				}
			}
		})
	}
	_ = g.Wait()

	success := int(successCount.Load())
	scenario := "Different rooms"
	expectedMax := totalRequests
	if sameResource {
		scenario = "Same room"
		expectedMax = 1
	}

	return BusinessFactorResult{
		Middleware:    middleware,
		Scenario:      scenario,
		TotalRequests: totalRequests,
		SuccessCount:  success,
		SuccessRate:   float64(success) / float64(totalRequests) * 100.0,
		ExpectedMax:   expectedMax,
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: benchmark [performance|business] [flags]")
		os.Exit(1)
	}
	testType := os.Args[1]

	fs := flag.NewFlagSet(testType, flag.ExitOnError)
	baseFlag := fs.String("base", "2030-01-01", "first night used by the run (YYYY-MM-DD)")
	requests := fs.Int("requests", 1000, "requests per operation")
	concurrency := fs.Int("concurrency", 10, "concurrent workers")
	_ = fs.Parse(os.Args[2:])

	base, err := reservation.ParseDate(*baseFlag)
	if err != nil {
		config.Exitf("invalid -base: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("failed to load config: %v", err)
	}

	log, err := logger.NewLogger(cfg.Log.Level, "console", "hotel-benchmark")
	if err != nil {
		config.Exitf("failed to build logger: %v", err)
	}
	defer log.Sync()

	addr := cfg.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	clients := []struct {
		name string
		dial func() (Client, error)
	}{
		{"gRPC", func() (Client, error) {
			c, err := rpc.Dial(addr)
			if err != nil {
				return nil, err
			}
			return grpcClient{c}, nil
		}},
		{"RabbitMQ", func() (Client, error) {
			c, err := mq.Dial(cfg.AMQPURL, cfg.Queue)
			if err != nil {
				return nil, err
			}
			return mqClient{c}, nil
		}},
	}

	ctx := context.Background()
	var results []BenchmarkResult

	switch testType {
	case "performance":
		printHeader("PERFORMANCE")
	case "business":
		printHeader("BUSINESS FACTOR")
	default:
		fmt.Printf("unknown test type: %s\n", testType)
		os.Exit(1)
	}

	for i, target := range clients {
		fmt.Printf("\n--- %s ---\n", target.name)
		client, err := target.dial()
		if err != nil {
			log.Fatal("failed to connect", zap.String("middleware", target.name), zap.Error(err))
		}

		// cada middleware usa um bloco de datas próprio para não colidir
		runBase := base.AddDays(i * 1000)

		switch testType {
		case "performance":
			for j, op := range []string{"ListAvailable", "CreateReservation", "CancelReservation"} {
				log.Info("running", zap.String("middleware", target.name), zap.String("operation", op))
				r := runPerformanceTest(ctx, client, target.name, op, runBase.AddDays(j*300), *requests, *concurrency)
				results = append(results, r)
				printResult(r)
			}
		case "business":
			printBusinessResult(runBusinessFactorTest(ctx, client, target.name, runBase, false))
			printBusinessResult(runBusinessFactorTest(ctx, client, target.name, runBase.AddDays(500), true))
		}
		_ = client.Close()
	}

	if testType == "performance" {
		printHeader("SUMMARY")
		printComparison(results)
	}
}

func printHeader(title string) {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 80))
}

func printResult(r BenchmarkResult) {
	fmt.Printf("\n%s - %s:\n", r.Middleware, r.Operation)
	fmt.Printf("  Requests: %d\n", r.TotalRequests)
	fmt.Printf("  Success rate: %.2f%%\n", r.SuccessRate)
	fmt.Printf("  Avg latency: %v\n", r.AvgLatency)
	fmt.Printf("  P50: %v\n", r.P50Latency)
	fmt.Printf("  P95: %v\n", r.P95Latency)
	fmt.Printf("  P99: %v\n", r.P99Latency)
	fmt.Printf("  Throughput: %.2f req/s\n", r.Throughput)
}

func printBusinessResult(r BusinessFactorResult) {
	fmt.Printf("\n[%s] %s:\n", r.Middleware, r.Scenario)
	fmt.Printf("  Requests: %d\n", r.TotalRequests)
	fmt.Printf("  Successes: %d\n", r.SuccessCount)
	fmt.Printf("  Success rate: %.2f%%\n", r.SuccessRate)
	fmt.Printf("  Expected max: %d\n", r.ExpectedMax)
	if r.SuccessCount > r.ExpectedMax {
		fmt.Printf("  WARNING: more than %d reservation accepted, possible race condition.\n", r.ExpectedMax)
	}
}

func printComparison(results []BenchmarkResult) {
	byOp := map[string][]BenchmarkResult{}
	var order []string
	for _, r := range results {
		if _, ok := byOp[r.Operation]; !ok {
			order = append(order, r.Operation)
		}
		byOp[r.Operation] = append(byOp[r.Operation], r)
	}

	for _, op := range order {
		fmt.Printf("\n%s:\n", op)
		for _, r := range byOp[op] {
			fmt.Printf("  %s: avg=%v, throughput=%.2f req/s, success=%.2f%%\n",
				r.Middleware, r.AvgLatency, r.Throughput, r.SuccessRate)
		}
	}
}
