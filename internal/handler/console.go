package handler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wvmart/kiosk/internal/models"
	"github.com/wvmart/kiosk/internal/repository"
	"github.com/wvmart/kiosk/internal/service"
	"github.com/wvmart/kiosk/internal/utils"
)

// Console runs the interactive checkout loop on a terminal. Every recoverable
// input error is reported and the same prompt repeats until the input is
// valid; only fatal catalog errors end the run early.
type Console struct {
	checkout *service.CheckoutService
	repo     *repository.CatalogRepository
	in       *bufio.Scanner
	out      io.Writer
}

// NewConsole constructs a Console over the given streams.
func NewConsole(checkout *service.CheckoutService, repo *repository.CatalogRepository, in io.Reader, out io.Writer) *Console {
	return &Console{
		checkout: checkout,
		repo:     repo,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run serves customers until one answers no to another purchase or the input
// stream closes.
func (c *Console) Run() error {
	for {
		c.checkout.Begin()

		fmt.Fprintln(c.out, "Welcome! Here is what we have in stock today.")
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, c.repo.StockGuide())
		fmt.Fprintln(c.out)

		pending, err := c.promptOrder()
		if err != nil {
			return err
		}

		for _, offer := range pending.Upsells {
			yes, err := c.promptYesNo(fmt.Sprintf("%s: you can get %d more for free. Add it? (Y/N)", offer.Name, offer.Get))
			if err != nil {
				return err
			}
			c.checkout.ResolveUpsell(offer.Name, yes)
		}

		for _, shortage := range pending.Shortages {
			yes, err := c.promptYesNo(fmt.Sprintf("%s: %d unit(s) are not covered by the promotion and cost full price. Buy them anyway? (Y/N)", shortage.Name, shortage.Quantity))
			if err != nil {
				return err
			}
			c.checkout.ResolveShortage(shortage.Name, yes)
		}

		yes, err := c.promptYesNo("Apply membership discount? (Y/N)")
		if err != nil {
			return err
		}
		c.checkout.ApplyMembership(yes)

		receipt, err := c.checkout.Checkout()
		if err != nil {
			return err
		}
		c.printReceipt(receipt)

		again, err := c.promptYesNo("Is there anything else you would like to buy? (Y/N)")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(c.out, "Thank you, see you next time!")
			return nil
		}
	}
}

// promptOrder re-prompts until the order line validates. Fatal catalog errors
// propagate.
func (c *Console) promptOrder() (service.PendingDecisions, error) {
	for {
		fmt.Fprintln(c.out, "Enter the products and quantities you would like to buy. (e.g. [콜라-10],[사이다-3])")

		line, err := c.readLine()
		if err != nil {
			return service.PendingDecisions{}, err
		}

		pending, err := c.checkout.ProcessOrder(line)
		if err != nil {
			if utils.IsRecoverable(err) {
				fmt.Fprintln(c.out, utils.UserMessage(err))
				continue
			}
			return service.PendingDecisions{}, err
		}
		return pending, nil
	}
}

// promptYesNo re-prompts until the customer answers Y or N, case and spacing
// ignored.
func (c *Console) promptYesNo(msg string) (bool, error) {
	for {
		fmt.Fprintln(c.out, msg)

		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		yes, err := parseYesNo(line)
		if err != nil {
			fmt.Fprintln(c.out, utils.UserMessage(err))
			continue
		}
		return yes, nil
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToUpper(strings.ReplaceAll(raw, " ", "")) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, utils.ErrInvalidYesNo
	}
}

func (c *Console) printReceipt(r models.Receipt) {
	w := c.out
	fmt.Fprintln(w, "==============W Mart===============")
	fmt.Fprintf(w, "%-16s %5s %12s\n", "Product", "Qty", "Amount")
	for _, line := range r.Lines {
		fmt.Fprintf(w, "%-16s %5d %12s\n", line.Name, line.Quantity, utils.FormatMoney(line.Amount))
	}

	if len(r.Gifts) > 0 {
		fmt.Fprintln(w, "==============Gifts================")
		for _, g := range r.Gifts {
			fmt.Fprintf(w, "%-16s %5d\n", g.Name, g.Quantity)
		}
	}
	for _, name := range r.Unclaimed {
		fmt.Fprintf(w, "* promotion gift not claimed for %s\n", name)
	}

	fmt.Fprintln(w, "===================================")
	fmt.Fprintf(w, "%-16s %5d %12s\n", "Total", r.TotalQuantity, utils.FormatMoney(r.TotalPrice))
	fmt.Fprintf(w, "%-22s %12s\n", "Event discount", "-"+utils.FormatMoney(r.EventDiscount))
	fmt.Fprintf(w, "%-22s %12s\n", "Membership discount", "-"+utils.FormatMoney(r.MembershipDiscount))
	fmt.Fprintf(w, "%-22s %12s\n", "Amount due", utils.FormatMoney(r.FinalPrice))
	fmt.Fprintf(w, "Receipt %s\n", r.ID)
	fmt.Fprintln(w)
}
