// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/taibuivan/wedplan/internal/core/groom"
	"github.com/taibuivan/wedplan/internal/core/order"
	"github.com/taibuivan/wedplan/internal/core/organizer"
	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/constants"
)

// # Listing

func (c *Console) listGrooms(ctx context.Context) error {
	grooms, err := c.services.Grooms.ListGrooms(ctx)
	if err != nil {
		return err
	}
	c.renderGrooms(grooms)
	return nil
}

func (c *Console) listOrganizers(ctx context.Context) error {
	organizers, err := c.services.Organizers.ListOrganizers(ctx)
	if err != nil {
		return err
	}
	c.renderOrganizers(organizers)
	return nil
}

func (c *Console) listOrders(ctx context.Context) error {
	orders, err := c.services.Orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	c.renderOrders(orders)
	return nil
}

// # Adding

func (c *Console) addGroom(ctx context.Context) error {
	g, err := c.readGroom("Name: ", "Age: ")
	if err != nil {
		return err
	}

	_, err = c.services.Grooms.AddGroom(ctx, g)
	return err
}

func (c *Console) addOrganizer(ctx context.Context) error {
	o, err := c.readOrganizer("Name: ", "Social credit: ")
	if err != nil {
		return err
	}

	_, err = c.services.Organizers.AddOrganizer(ctx, o)
	return err
}

func (c *Console) addOrder(ctx context.Context) error {
	o, err := c.readOrder(orderPrompts{
		groomID:     "groom_id: ",
		date:        "Date (YYYY-MM-DD): ",
		guests:      "Guests: ",
		payment:     "Payment: ",
		location:    "Location: ",
		organizerID: "organizer_id: ",
	})
	if err != nil {
		return err
	}

	_, err = c.services.Orders.AddOrder(ctx, o)
	return err
}

// # Editing

func (c *Console) editGroom(ctx context.Context) error {
	id, err := c.prompt.Int("ID groom: ", 1)
	if err != nil {
		return err
	}

	g, err := c.readGroom("New name: ", "New age: ")
	if err != nil {
		return err
	}

	if err := c.services.Grooms.EditGroom(ctx, id, g); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Groom %d updated.\n", id)
	return nil
}

func (c *Console) editOrganizer(ctx context.Context) error {
	id, err := c.prompt.Int("ID organizer: ", 1)
	if err != nil {
		return err
	}

	o, err := c.readOrganizer("New name: ", "New social credit: ")
	if err != nil {
		return err
	}

	if err := c.services.Organizers.EditOrganizer(ctx, id, o); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Organizer %d updated.\n", id)
	return nil
}

func (c *Console) editOrder(ctx context.Context) error {
	id, err := c.prompt.Int("ID order: ", 1)
	if err != nil {
		return err
	}

	o, err := c.readOrder(orderPrompts{
		groomID:     "New groom_id: ",
		date:        "New date (YYYY-MM-DD): ",
		guests:      "Guests: ",
		payment:     "Payment: ",
		location:    "Location: ",
		organizerID: "organizer_id: ",
	})
	if err != nil {
		return err
	}

	if err := c.services.Orders.EditOrder(ctx, id, o); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %d updated.\n", id)
	return nil
}

// # Deleting

func (c *Console) deleteGroom(ctx context.Context) error {
	id, err := c.prompt.Int("ID groom: ", 1)
	if err != nil {
		return err
	}

	if err := c.services.Grooms.DeleteGroom(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Groom %d deleted.\n", id)
	return nil
}

func (c *Console) deleteOrganizer(ctx context.Context) error {
	id, err := c.prompt.Int("ID organizer: ", 1)
	if err != nil {
		return err
	}

	if err := c.services.Organizers.DeleteOrganizer(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Organizer %d deleted.\n", id)
	return nil
}

func (c *Console) deleteOrder(ctx context.Context) error {
	id, err := c.prompt.Int("ID order: ", 1)
	if err != nil {
		return err
	}

	if err := c.services.Orders.DeleteOrder(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %d deleted.\n", id)
	return nil
}

// # Generation

func (c *Console) generate(ctx context.Context) error {
	count, err := c.prompt.Int("How many rows to generate in each table?: ", 1)
	if err != nil {
		return err
	}
	return c.Generate(ctx, count)
}

// Generate fills every table with count random rows and prints a summary.
// The summary is printed even when a sequence sync failed, since the rows
// are already in place by then.
func (c *Console) Generate(ctx context.Context, count int) error {
	report, err := c.services.Generator.Generate(ctx, count)
	if err == nil || apperr.HasCode(err, apperr.CodeSyncFailed) {
		c.renderReport(report)
	}
	return err
}

// # Searches

func (c *Console) searchPayment(ctx context.Context) error {
	minPayment, err := c.prompt.Int("Min payment: ", 0)
	if err != nil {
		return err
	}
	maxPayment, err := c.prompt.Int("Max payment: ", 0)
	if err != nil {
		return err
	}
	pattern, err := c.prompt.Text("Name groom: ")
	if err != nil {
		return err
	}

	result, err := c.services.Search.ByPaymentAndGroomName(ctx, minPayment, maxPayment, pattern)
	fmt.Fprintf(c.out, "\n=== RESULTS FOR PAYMENT %d .. %d AND NAME ILIKE '%s' ===\n", minPayment, maxPayment, pattern)
	if err == nil {
		c.renderPaymentMatches(result.Rows)
	}
	c.renderTiming(result.Timing, result.Cached)
	return err
}

func (c *Console) searchCredit(ctx context.Context) error {
	from, err := c.prompt.Date("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	to, err := c.prompt.Date("End date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	minCredit, err := c.prompt.Int("Min social credit: ", 0)
	if err != nil {
		return err
	}

	result, err := c.services.Search.ByDateAndOrganizerCredit(ctx, from, to, minCredit)
	fmt.Fprintf(c.out, "\n=== RESULTS FOR DATE %s .. %s AND ORGANIZER SOCIAL CREDIT >= %d ===\n",
		from.Format(constants.DateLayout), to.Format(constants.DateLayout), minCredit)
	if err == nil {
		c.renderCreditMatches(result.Rows)
	}
	c.renderTiming(result.Timing, result.Cached)
	return err
}

func (c *Console) searchTotals(ctx context.Context) error {
	minGuests, err := c.prompt.Int("Min guests: ", 0)
	if err != nil {
		return err
	}
	pattern, err := c.prompt.Text("Location pattern: ")
	if err != nil {
		return err
	}

	result, err := c.services.Search.GroomTotalsByGuestsAndLocation(ctx, minGuests, pattern)
	fmt.Fprintf(c.out, "\n=== RESULTS FOR GUESTS >= %d AND LOCATION ILIKE '%s' ===\n", minGuests, pattern)
	if err == nil {
		c.renderGroomTotals(result.Rows)
	}
	c.renderTiming(result.Timing, result.Cached)
	return err
}

// # Status

// Status runs every health check and prints one line per dependency.
func (c *Console) Status(ctx context.Context) error {
	var errs []error

	for _, check := range c.services.Health {
		if err := check.Check(ctx); err != nil {
			fmt.Fprintf(c.out, "%-10s unavailable\n", check.Name)
			errs = append(errs, fmt.Errorf("%s: %w", check.Name, err))
			continue
		}
		fmt.Fprintf(c.out, "%-10s ok\n", check.Name)
	}

	return errors.Join(errs...)
}

// # Input helpers

func (c *Console) readGroom(namePrompt, agePrompt string) (*groom.Groom, error) {
	name, err := c.prompt.NonEmpty(namePrompt)
	if err != nil {
		return nil, err
	}
	age, err := c.prompt.Int(agePrompt, 0)
	if err != nil {
		return nil, err
	}
	return &groom.Groom{Name: name, Age: age}, nil
}

func (c *Console) readOrganizer(namePrompt, creditPrompt string) (*organizer.Organizer, error) {
	name, err := c.prompt.NonEmpty(namePrompt)
	if err != nil {
		return nil, err
	}
	credit, err := c.prompt.Int(creditPrompt, 0)
	if err != nil {
		return nil, err
	}
	return &organizer.Organizer{Name: name, SocialCredit: credit}, nil
}

type orderPrompts struct {
	groomID, date, guests, payment, location, organizerID string
}

func (c *Console) readOrder(prompts orderPrompts) (*order.Order, error) {
	var (
		o   order.Order
		err error
	)

	if o.GroomID, err = c.prompt.Int(prompts.groomID, 1); err != nil {
		return nil, err
	}
	if o.WeddingDate, err = c.prompt.Date(prompts.date); err != nil {
		return nil, err
	}
	if o.Guests, err = c.prompt.Int(prompts.guests, 0); err != nil {
		return nil, err
	}
	if o.Payment, err = c.prompt.Int(prompts.payment, 0); err != nil {
		return nil, err
	}
	if o.Location, err = c.prompt.NonEmpty(prompts.location); err != nil {
		return nil, err
	}
	if o.OrganizerID, err = c.prompt.Int(prompts.organizerID, 1); err != nil {
		return nil, err
	}

	return &o, nil
}
