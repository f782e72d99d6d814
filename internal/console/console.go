// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package console is the interactive menu of wedplan.

It reads a menu number, maps it to a [Command], collects the arguments that
command needs and calls the matching service. Data-access failures have
already been printed by the time they reach the console; only errors that
were not yet shown (validation, not found) are printed here.

The console is single-threaded: one command runs at a time and every command
blocks until the store answers.
*/
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/taibuivan/wedplan/internal/core/generator"
	"github.com/taibuivan/wedplan/internal/core/groom"
	"github.com/taibuivan/wedplan/internal/core/order"
	"github.com/taibuivan/wedplan/internal/core/organizer"
	"github.com/taibuivan/wedplan/internal/core/search"
	"github.com/taibuivan/wedplan/internal/platform/apperr"
)

// # Service Contracts

type GroomService interface {
	ListGrooms(ctx context.Context) ([]*groom.Groom, error)
	AddGroom(ctx context.Context, g *groom.Groom) (int, error)
	EditGroom(ctx context.Context, id int, g *groom.Groom) error
	DeleteGroom(ctx context.Context, id int) error
}

type OrganizerService interface {
	ListOrganizers(ctx context.Context) ([]*organizer.Organizer, error)
	AddOrganizer(ctx context.Context, o *organizer.Organizer) (int, error)
	EditOrganizer(ctx context.Context, id int, o *organizer.Organizer) error
	DeleteOrganizer(ctx context.Context, id int) error
}

type OrderService interface {
	ListOrders(ctx context.Context) ([]*order.Order, error)
	AddOrder(ctx context.Context, o *order.Order) (int, error)
	EditOrder(ctx context.Context, id int, o *order.Order) error
	DeleteOrder(ctx context.Context, id int) error
}

type Generator interface {
	Generate(ctx context.Context, count int) (generator.Report, error)
}

type Searcher interface {
	ByPaymentAndGroomName(ctx context.Context, minPayment, maxPayment int, pattern string) (search.Result[search.PaymentMatch], error)
	ByDateAndOrganizerCredit(ctx context.Context, from, to time.Time, minCredit int) (search.Result[search.CreditMatch], error)
	GroomTotalsByGuestsAndLocation(ctx context.Context, minGuests int, pattern string) (search.Result[search.GroomTotal], error)
}

// HealthCheck is one line of the status report.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Services bundles everything the menu can call.
type Services struct {
	Grooms     GroomService
	Organizers OrganizerService
	Orders     OrderService
	Generator  Generator
	Search     Searcher
	Health     []HealthCheck
}

// entry binds a Command to its menu label and handler.
type entry struct {
	label string
	run   func(ctx context.Context) error
}

type Console struct {
	services Services
	prompt   *Prompter
	out      io.Writer
	logger   *slog.Logger
	commands map[Command]entry
}

func New(services Services, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	c := &Console{
		services: services,
		prompt:   NewPrompter(in, out),
		out:      out,
		logger:   logger,
	}

	c.commands = map[Command]entry{
		CmdListGrooms:      {"Show grooms", c.listGrooms},
		CmdListOrganizers:  {"Show organizers", c.listOrganizers},
		CmdListOrders:      {"Show orders", c.listOrders},
		CmdAddGroom:        {"Add groom", c.addGroom},
		CmdAddOrganizer:    {"Add organizer", c.addOrganizer},
		CmdAddOrder:        {"Add order", c.addOrder},
		CmdEditGroom:       {"Edit groom", c.editGroom},
		CmdEditOrganizer:   {"Edit organizer", c.editOrganizer},
		CmdEditOrder:       {"Edit order", c.editOrder},
		CmdDeleteGroom:     {"Delete groom", c.deleteGroom},
		CmdDeleteOrganizer: {"Delete organizer", c.deleteOrganizer},
		CmdDeleteOrder:     {"Delete order", c.deleteOrder},
		CmdGenerate:        {"Generate random data", c.generate},
		CmdSearchPayment:   {"Search: payment + groom name", c.searchPayment},
		CmdSearchCredit:    {"Search: date + organizer social credit", c.searchCredit},
		CmdSearchTotals:    {"Search: grooms by order details", c.searchTotals},
		CmdStatus:          {"Connection status", c.Status},
	}

	return c
}

// Run shows the menu until the user exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()

		choice, err := c.prompt.Text("Your choice: ")
		if err != nil {
			return c.exit(err)
		}

		cmd, ok := ParseCommand(choice)
		if ok && cmd == CmdExit {
			return c.exit(nil)
		}

		command, found := c.commands[cmd]
		if !ok || !found {
			fmt.Fprintln(c.out, "Wrong choice! Try again")
			continue
		}

		if err := command.run(ctx); err != nil {
			if errors.Is(err, ErrInputClosed) {
				return c.exit(err)
			}
			c.report(command.label, err)
		}
	}
}

// Execute runs a single command without showing the menu.
func (c *Console) Execute(ctx context.Context, cmd Command) error {
	command, found := c.commands[cmd]
	if !found {
		return fmt.Errorf("console: unknown command %d", cmd)
	}

	err := command.run(ctx)
	if err != nil && !errors.Is(err, ErrInputClosed) {
		c.report(command.label, err)
	}
	return err
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, "\n=== MAIN MENU ===")
	for cmd := CmdListGrooms; cmd <= CmdStatus; cmd++ {
		fmt.Fprintf(c.out, "%d. %s\n", cmd, c.commands[cmd].label)
	}
	fmt.Fprintln(c.out, "0. Exit")
}

// exit ends the loop. A closed input is a normal way to leave.
func (c *Console) exit(err error) error {
	fmt.Fprintln(c.out, "Exit...")
	if err == nil || errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

// report prints err unless the data-access layer already did.
func (c *Console) report(label string, err error) {
	attrs := []any{slog.String("command", label), slog.Any("error", err)}
	ae := apperr.As(err)
	if ae != nil {
		attrs = append(attrs, slog.String("code", ae.Code))
		if ae.Reference != "" {
			attrs = append(attrs, slog.String("reference", ae.Reference))
		}
		if ae.Dependents > 0 {
			attrs = append(attrs, slog.Int64("dependents", ae.Dependents))
		}
	}
	c.logger.Debug("command_failed", attrs...)

	if apperr.IsReported(err) {
		return
	}

	if ae != nil {
		fmt.Fprintf(c.out, "Error: %s\n", ae.Message)
		return
	}
	fmt.Fprintf(c.out, "Error: %v\n", err)
}
