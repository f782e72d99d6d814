// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/taibuivan/wedplan/internal/core/generator"
	"github.com/taibuivan/wedplan/internal/core/groom"
	"github.com/taibuivan/wedplan/internal/core/order"
	"github.com/taibuivan/wedplan/internal/core/organizer"
	"github.com/taibuivan/wedplan/internal/core/search"
	"github.com/taibuivan/wedplan/internal/platform/constants"
	"github.com/taibuivan/wedplan/internal/platform/postgres"
	"github.com/taibuivan/wedplan/pkg/slice"
)

// table writes a header line and aligned rows, followed by the row count.
func (c *Console) table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()

	fmt.Fprintf(c.out, "(%d rows)\n", len(rows))
}

func (c *Console) renderGrooms(grooms []*groom.Groom) {
	c.table([]string{"ID", "NAME", "AGE"}, slice.Map(grooms, func(g *groom.Groom) []string {
		return []string{strconv.Itoa(g.ID), g.Name, strconv.Itoa(g.Age)}
	}))
}

func (c *Console) renderOrganizers(organizers []*organizer.Organizer) {
	c.table([]string{"ID", "NAME", "SOCIAL CREDIT"}, slice.Map(organizers, func(o *organizer.Organizer) []string {
		return []string{strconv.Itoa(o.ID), o.Name, strconv.Itoa(o.SocialCredit)}
	}))
}

func (c *Console) renderOrders(orders []*order.Order) {
	headers := []string{"ID", "GROOM", "DATE", "GUESTS", "PAYMENT", "LOCATION", "ORGANIZER"}
	c.table(headers, slice.Map(orders, func(o *order.Order) []string {
		return []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.GroomID),
			o.WeddingDate.Format(constants.DateLayout),
			strconv.Itoa(o.Guests),
			strconv.Itoa(o.Payment),
			o.Location,
			strconv.Itoa(o.OrganizerID),
		}
	}))
}

func (c *Console) renderPaymentMatches(rows []search.PaymentMatch) {
	headers := []string{"ORDER", "DATE", "PAYMENT", "GROOM", "AGE"}
	c.table(headers, slice.Map(rows, func(m search.PaymentMatch) []string {
		return []string{
			strconv.Itoa(m.OrderID),
			m.WeddingDate.Format(constants.DateLayout),
			strconv.Itoa(m.Payment),
			m.GroomName,
			strconv.Itoa(m.GroomAge),
		}
	}))
}

func (c *Console) renderCreditMatches(rows []search.CreditMatch) {
	headers := []string{"ORDER", "DATE", "GUESTS", "ORGANIZER", "SOCIAL CREDIT"}
	c.table(headers, slice.Map(rows, func(m search.CreditMatch) []string {
		return []string{
			strconv.Itoa(m.OrderID),
			m.WeddingDate.Format(constants.DateLayout),
			strconv.Itoa(m.Guests),
			m.OrganizerName,
			strconv.Itoa(m.SocialCredit),
		}
	}))
}

func (c *Console) renderGroomTotals(rows []search.GroomTotal) {
	headers := []string{"GROOM", "AGE", "TOTAL ORDERS", "TOTAL PAYMENT"}
	c.table(headers, slice.Map(rows, func(t search.GroomTotal) []string {
		return []string{
			t.GroomName,
			strconv.Itoa(t.GroomAge),
			strconv.FormatInt(t.TotalOrders, 10),
			strconv.FormatInt(t.TotalPayment, 10),
		}
	}))

	grand := slice.Reduce(rows, int64(0), func(sum int64, t search.GroomTotal) int64 {
		return sum + t.TotalPayment
	})
	fmt.Fprintf(c.out, "Grand total payment: %d\n", grand)
}

func (c *Console) renderTiming(timing postgres.Timing, cached bool) {
	if cached {
		fmt.Fprintf(c.out, "Query time: %s (cached)\n", timing)
		return
	}
	fmt.Fprintf(c.out, "Query time: %s\n", timing)
}

func (c *Console) renderReport(report generator.Report) {
	fmt.Fprintf(c.out, "Inserted %d grooms, %d organizers, %d orders in %s.\n",
		report.Grooms, report.Organizers, report.Orders, report.Elapsed.Round(time.Millisecond))
}
