package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/rpc"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: client [rooms|available|reserve|cancel|reservations] [flags]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("failed to load config: %v", err)
	}

	addr := cfg.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	client, err := rpc.Dial(addr)
	if err != nil {
		config.Exitf("failed to connect to server: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	cmd := os.Args[1]
	switch cmd {
	case "rooms":
		roomsCmd(ctx, client)
	case "available":
		availableCmd(ctx, client, os.Args[2:])
	case "reserve":
		reserveCmd(ctx, client, os.Args[2:])
	case "cancel":
		cancelCmd(ctx, client, os.Args[2:])
	case "reservations":
		reservationsCmd(ctx, client)
	default:
		fmt.Println("unknown command:", cmd)
		os.Exit(1)
	}
}

func printRooms(rooms []rpc.Room) {
	for _, r := range rooms {
		fmt.Printf("Room %d - %s - $%g\n", r.Number, r.Type, r.Rate)
	}
}

func printReservation(r rpc.Reservation) {
	fmt.Printf("Reservation ID: %s\n", r.ReservationID)
	fmt.Printf("Guest: %s\n", r.Guest.Name)
	fmt.Printf("Room: %d (%s)\n", r.Room.Number, r.Room.Type)
	fmt.Printf("Check-In: %s\n", r.CheckIn)
	fmt.Printf("Check-Out: %s\n", r.CheckOut)
	fmt.Printf("Total: $%g (%d nights)\n", r.Total, r.Nights)
}

func roomsCmd(ctx context.Context, client *rpc.Client) {
	resp, err := client.ListRooms(ctx)
	if err != nil {
		config.Exitf("ListRooms error: %v", err)
	}
	printRooms(resp.Rooms)
}

func availableCmd(ctx context.Context, client *rpc.Client, args []string) {
	fs := flag.NewFlagSet("available", flag.ExitOnError)
	checkIn := fs.String("in", "", "check-in date (YYYY-MM-DD)")
	checkOut := fs.String("out", "", "check-out date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *checkIn == "" || *checkOut == "" {
		config.Exitf("in and out are required")
	}

	resp, err := client.ListAvailable(ctx, &rpc.ListAvailableRequest{CheckIn: *checkIn, CheckOut: *checkOut})
	if err != nil {
		config.Exitf("ListAvailable error: %v", err)
	}
	if len(resp.Rooms) == 0 {
		fmt.Println("No available rooms for the selected dates.")
		return
	}
	fmt.Println("Available Rooms:")
	printRooms(resp.Rooms)
}

func reserveCmd(ctx context.Context, client *rpc.Client, args []string) {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	name := fs.String("name", "", "guest name")
	email := fs.String("email", "", "guest email")
	phone := fs.String("phone", "", "guest phone")
	room := fs.Int("room", 0, "room number (ex: 101)")
	checkIn := fs.String("in", "", "check-in date (YYYY-MM-DD)")
	checkOut := fs.String("out", "", "check-out date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *name == "" || *room == 0 || *checkIn == "" || *checkOut == "" {
		config.Exitf("name, room, in and out are required")
	}

	resp, err := client.CreateReservation(ctx, &rpc.CreateReservationRequest{
		Guest:      rpc.Guest{Name: *name, Email: *email, Phone: *phone},
		RoomNumber: *room,
		CheckIn:    *checkIn,
		CheckOut:   *checkOut,
	})
	if err != nil {
		config.Exitf("CreateReservation error: %v", err)
	}

	fmt.Println("Reservation successful!")
	printReservation(resp.Reservation)
}

func cancelCmd(ctx context.Context, client *rpc.Client, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "reservation id")
	_ = fs.Parse(args)

	if *id == "" {
		config.Exitf("id is required")
	}

	resp, err := client.CancelReservation(ctx, &rpc.CancelReservationRequest{ReservationID: *id})
	if err != nil {
		config.Exitf("CancelReservation error: %v", err)
	}
	fmt.Println(resp.Message)
}

func reservationsCmd(ctx context.Context, client *rpc.Client) {
	resp, err := client.ListReservations(ctx)
	if err != nil {
		config.Exitf("ListReservations error: %v", err)
	}
	if len(resp.Reservations) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	for _, r := range resp.Reservations {
		printReservation(r)
		fmt.Println("-------------------------------------")
	}
}
