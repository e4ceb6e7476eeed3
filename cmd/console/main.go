package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/printshophq/printshop-admin/internal/config"
	"github.com/printshophq/printshop-admin/internal/console/gateway"
	"github.com/printshophq/printshop-admin/internal/console/notify"
	"github.com/printshophq/printshop-admin/internal/console/realtime"
	"github.com/printshophq/printshop-admin/internal/console/session"
	"github.com/printshophq/printshop-admin/internal/events"
	"github.com/printshophq/printshop-admin/internal/logger"
	"github.com/printshophq/printshop-admin/internal/order"
	"github.com/printshophq/printshop-admin/internal/workflow"
	"github.com/printshophq/printshop-admin/internal/xerox"
)

type console struct {
	store   *session.Store
	client  *gateway.Client
	channel *realtime.Channel
	out     *bufio.Writer
}

func main() {
	cfg := config.LoadConsole()
	logger.SetService("printshop-console")

	store := session.NewStore(cfg.SessionFile)
	store.Restore()

	client := gateway.New(cfg.BaseURL, store)
	client.OnUnauthorized = func() {
		fmt.Println("session expired, please login again")
	}

	channel := realtime.New(cfg.SocketURL)
	channel.TokenSource = store.Token

	c := &console{
		store:   store,
		client:  client,
		channel: channel,
		out:     bufio.NewWriter(os.Stdout),
	}
	defer c.channel.Close()

	if admin := store.Admin(); admin != nil {
		fmt.Printf("resumed session as %s <%s>\n", admin.Name, admin.Email)
	}
	fmt.Println(`type "help" for commands`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "exit" || args[0] == "quit" {
			return
		}
		if err := c.run(context.Background(), args); err != nil {
			fmt.Println("error:", err.Error())
		}
		c.out.Flush()
	}
}

func (c *console) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "help":
		c.printHelp()
	case "login":
		return c.login(ctx, args[1:])
	case "logout":
		c.client.Logout()
		fmt.Println("logged out")
	case "me":
		return c.me(ctx)
	case "orders":
		return c.orders(ctx, args[1:])
	case "order":
		return c.order(ctx, args[1:])
	case "xerox":
		return c.xerox(ctx, args[1:])
	case "notifications":
		return c.notifications(ctx, args[1:])
	case "unread":
		count, err := c.client.UnreadNotificationCount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d unread notification(s)\n", count)
	case "watch":
		return c.watch(ctx)
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
	return nil
}

func (c *console) printHelp() {
	fmt.Print(`commands:
  login <email>                     authenticate (password prompted)
  logout                            drop the session
  me                                show the signed-in admin
  orders [status]                   list orders, optionally by status
  order show <id>                   order details and available actions
  order set-status <id> <status>    move an order through the workflow
  order set-payment <id> <status>   update payment status
  xerox list [status]               list print jobs
  xerox set-status <id> <status>    update a print job
  notifications [type]              list inbox entries
  unread                            unread notification count
  watch                             follow order_created events live
  exit
`)
}

func (c *console) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: login <email>")
	}
	fmt.Print("password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	out, err := c.client.Login(ctx, args[0], string(raw))
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s <%s>\n", out.Admin.Name, out.Admin.Email)
	return nil
}

func (c *console) me(ctx context.Context) error {
	admin, err := c.client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("#%d %s <%s>\n", admin.ID, admin.Name, admin.Email)
	return nil
}

func (c *console) orders(ctx context.Context, args []string) error {
	filter := order.ListFilter{Limit: 20}
	if len(args) > 0 {
		filter.Status = args[0]
	}
	orders, total, err := c.client.ListOrders(ctx, filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tTOTAL\tSTATUS\tPAYMENT")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%s\n",
			o.ID, o.OrderNumber, o.CustomerName, o.TotalAmount, o.OrderStatus, o.PaymentStatus)
	}
	w.Flush()
	fmt.Fprintf(c.out, "%d of %d order(s)\n", len(orders), total)
	return nil
}

func (c *console) order(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: order show|set-status|set-payment <id> [status]")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid order id %q", args[1])
	}

	switch args[0] {
	case "show":
		o, err := c.client.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		c.printOrder(o)
	case "set-status":
		if len(args) != 3 {
			return fmt.Errorf("usage: order set-status <id> <status>")
		}
		o, err := c.client.UpdateOrderStatus(ctx, id, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", o.OrderNumber, o.OrderStatus)
	case "set-payment":
		if len(args) != 3 {
			return fmt.Errorf("usage: order set-payment <id> <status>")
		}
		o, err := c.client.UpdateOrderPaymentStatus(ctx, id, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%s payment is now %s\n", o.OrderNumber, o.PaymentStatus)
	default:
		return fmt.Errorf("unknown order subcommand %q", args[0])
	}
	return nil
}

func (c *console) printOrder(o order.Order) {
	fmt.Fprintf(c.out, "%s  %s  %s / %s\n", o.OrderNumber, o.CustomerName, o.OrderStatus, o.PaymentStatus)
	for _, item := range o.Items {
		fmt.Fprintf(c.out, "  %dx %s @ %.2f = %.2f\n", item.Quantity, item.ProductName, item.UnitPrice, item.Subtotal)
	}
	fmt.Fprintf(c.out, "  subtotal %.2f + delivery %.2f = total %.2f\n", o.Subtotal, o.DeliveryCharges, o.TotalAmount)

	actions := workflow.AvailableActions(o.OrderStatus, o.PaymentStatus)
	if len(actions.Statuses) > 0 {
		fmt.Fprintf(c.out, "  next statuses: %s\n", strings.Join(actions.Statuses, ", "))
	} else {
		fmt.Fprintln(c.out, "  no status changes available")
	}
	if actions.PaymentActions {
		fmt.Fprintln(c.out, "  payment may be marked paid or failed")
	}
}

func (c *console) xerox(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: xerox list|set-status ...")
	}
	switch args[0] {
	case "list":
		filter := xerox.ListFilter{Limit: 20}
		if len(args) > 1 {
			filter.Status = args[1]
		}
		jobs, total, err := c.client.ListXeroxOrders(ctx, filter)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tFILE\tPAGES\tCOPIES\tTOTAL\tSTATUS")
		for _, j := range jobs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%.2f\t%s\n",
				j.ID, j.OrderNumber, j.CustomerName, j.FileName, j.PageCount, j.Copies, j.TotalAmount, j.OrderStatus)
		}
		w.Flush()
		fmt.Fprintf(c.out, "%d of %d job(s)\n", len(jobs), total)
	case "set-status":
		if len(args) != 3 {
			return fmt.Errorf("usage: xerox set-status <id> <status>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[1])
		}
		j, err := c.client.UpdateXeroxOrderStatus(ctx, id, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", j.OrderNumber, j.OrderStatus)
	default:
		return fmt.Errorf("unknown xerox subcommand %q", args[0])
	}
	return nil
}

func (c *console) notifications(ctx context.Context, args []string) error {
	filter := gateway.NotificationFilter{}
	if len(args) > 0 {
		filter.Type = args[0]
	}
	entries, err := c.client.ListNotifications(ctx, filter)
	if err != nil {
		return err
	}
	for _, n := range entries {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s #%d [%s] %s: %s\n", marker, n.ID, n.Type, n.Title, n.Message)
	}
	return nil
}

// watch follows order_created events until interrupted, keeping a live
// unread badge the way the web console header does.
func (c *console) watch(ctx context.Context) error {
	counter := notify.NewCounter(c.client, c.channel)
	if err := counter.Start(ctx); err != nil {
		return err
	}
	defer counter.Stop()

	sub := c.channel.On(events.OrderCreated, func(ev events.Event) {
		fmt.Printf("\nnew order %v (%d unread)\n> ", ev.Data["order_number"], counter.Count())
	})
	defer c.channel.Off(sub)

	if err := c.channel.Connect(ctx); err != nil {
		return err
	}

	fmt.Printf("watching for new orders, %d unread. ctrl-c to stop\n", counter.Count())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)
	select {
	case <-stop:
	case <-ctx.Done():
	}
	fmt.Println("stopped watching")
	return nil
}
