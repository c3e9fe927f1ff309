// Command timer runs the pomodoro countdown in the terminal and
// persists completed sessions through the Studify API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/studify/studify-api/internal/apiclient"
	"github.com/studify/studify-api/internal/pomodoro"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "Studify API base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	mode := flag.String("mode", "work", "initial mode: work, shortBreak or longBreak")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := apiclient.New(*serverURL)
	if err := client.Login(ctx, *email, *password); err != nil {
		log.Fatalf("Failed to log in: %v", err)
	}

	timer := pomodoro.New(func(s pomodoro.Session) {
		if err := client.RegisterSession(ctx, s); err != nil {
			log.Printf("Failed to register session: %v", err)
			return
		}
		fmt.Printf("\nSesión completada: %s (%d min)\n", s.Mode, s.Duration)
	})
	timer.SetMode(pomodoro.Mode(*mode))
	timer.Toggle()

	go timer.Run(ctx)
	go readCommands(timer)

	fmt.Println("Temporizador iniciado. Comandos: p (pausar/reanudar), w/s/l (cambiar modo), Ctrl+C (salir)")

	display := time.NewTicker(time.Second)
	defer display.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nHasta luego")
			return
		case <-display.C:
			remaining := timer.Remaining().Round(time.Second)
			state := "▶"
			if !timer.Running() {
				state = "⏸"
			}
			fmt.Printf("\r%s %-10s %02d:%02d ", state, timer.Mode(),
				int(remaining.Minutes()), int(remaining.Seconds())%60)
		}
	}
}

func readCommands(timer *pomodoro.Timer) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "p":
			timer.Toggle()
		case "w":
			timer.SetMode(pomodoro.ModeWork)
		case "s":
			timer.SetMode(pomodoro.ModeShortBreak)
		case "l":
			timer.SetMode(pomodoro.ModeLongBreak)
		}
	}
}
