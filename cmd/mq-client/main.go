package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/mq"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: mq-client [rooms|available|reserve|cancel|reservations] [flags]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("failed to load config: %v", err)
	}

	client, err := mq.Dial(cfg.AMQPURL, cfg.Queue)
	if err != nil {
		config.Exitf("%v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	cmd := os.Args[1]
	switch cmd {
	case "rooms":
		rooms, err := client.ListRooms(ctx)
		if err != nil {
			config.Exitf("ListRooms error: %v", err)
		}
		printRooms(rooms)
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

func printRooms(rooms []mq.Room) {
	for _, r := range rooms {
		fmt.Printf("Room %d - %s - $%g\n", r.Number, r.Type, r.Rate)
	}
}

func printReservation(r mq.Reservation) {
	fmt.Printf("Reservation ID: %s\n", r.ReservationID)
	fmt.Printf("Guest: %s\n", r.GuestName)
	fmt.Printf("Room: %d (%s)\n", r.RoomNumber, r.RoomType)
	fmt.Printf("Check-In: %s\n", r.CheckIn)
	fmt.Printf("Check-Out: %s\n", r.CheckOut)
	fmt.Printf("Total: $%g (%d nights)\n", r.Total, r.Nights)
}

func availableCmd(ctx context.Context, client *mq.Client, args []string) {
	fs := flag.NewFlagSet("available", flag.ExitOnError)
	checkIn := fs.String("in", "", "check-in date (YYYY-MM-DD)")
	checkOut := fs.String("out", "", "check-out date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *checkIn == "" || *checkOut == "" {
		config.Exitf("in and out are required")
	}

	rooms, err := client.ListAvailable(ctx, *checkIn, *checkOut)
	if err != nil {
		config.Exitf("ListAvailable error: %v", err)
	}
	if len(rooms) == 0 {
		fmt.Println("No available rooms for the selected dates.")
		return
	}
	fmt.Println("Available Rooms:")
	printRooms(rooms)
}

func reserveCmd(ctx context.Context, client *mq.Client, args []string) {
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

	res, err := client.CreateReservation(ctx, mq.CreateReservationPayload{
		GuestName:  *name,
		GuestEmail: *email,
		GuestPhone: *phone,
		RoomNumber: *room,
		CheckIn:    *checkIn,
		CheckOut:   *checkOut,
	})
	if err != nil {
		config.Exitf("CreateReservation error: %v", err)
	}

	fmt.Println("Reservation successful!")
	printReservation(res)
}

func cancelCmd(ctx context.Context, client *mq.Client, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "reservation id")
	_ = fs.Parse(args)

	if *id == "" {
		config.Exitf("id is required")
	}

	ok, err := client.CancelReservation(ctx, *id)
	if err != nil {
		config.Exitf("CancelReservation error: %v", err)
	}
	if !ok {
		fmt.Println("Reservation not found.")
		return
	}
	fmt.Println("Reservation canceled successfully.")
}

func reservationsCmd(ctx context.Context, client *mq.Client) {
	list, err := client.ListReservations(ctx)
	if err != nil {
		config.Exitf("ListReservations error: %v", err)
	}
	if len(list) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	for _, r := range list {
		printReservation(r)
		fmt.Println("-------------------------------------")
	}
}
