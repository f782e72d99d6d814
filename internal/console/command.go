// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"strconv"
	"strings"
)

// Command is a menu choice. Its numeric value is the number the user types.
type Command int

const (
	CmdExit Command = iota
	CmdListGrooms
	CmdListOrganizers
	CmdListOrders
	CmdAddGroom
	CmdAddOrganizer
	CmdAddOrder
	CmdEditGroom
	CmdEditOrganizer
	CmdEditOrder
	CmdDeleteGroom
	CmdDeleteOrganizer
	CmdDeleteOrder
	CmdGenerate
	CmdSearchPayment
	CmdSearchCredit
	CmdSearchTotals
	CmdStatus
)

// ParseCommand maps raw input to a Command. ok is false for anything that is
// not a menu number.
func ParseCommand(input string) (cmd Command, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(CmdExit) || n > int(CmdStatus) {
		return 0, false
	}
	return Command(n), true
}
