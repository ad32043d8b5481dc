// Command kitchenboard renders the live open-order feed in a terminal. It
// is the polling consumer of the ordering service: new orders ring the
// terminal bell, and the board regroups on every change.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/livefeed"

	"github.com/sirupsen/logrus"
)

var boardColumns = []ds.OrderStatus{ds.StatusReceived, ds.StatusPreparing, ds.StatusReady}

func render(orders []dto.OrderResponse) {
	grouped := livefeed.GroupByStatus(orders)

	fmt.Print("\033[2J\033[H") // clear screen
	fmt.Printf("KITCHEN BOARD — %s\n\n", time.Now().Format("15:04:05"))

	for _, status := range boardColumns {
		bucket := grouped[string(status)]
		fmt.Printf("== %s (%d) ==\n", status, len(bucket))
		for _, order := range bucket {
			fmt.Printf("  [%s] table %s — %d items — %.2f\n",
				order.ID, order.TableNumber, len(order.Items), order.TotalAmount)
		}
		fmt.Println()
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "ordering service base URL")
	interval := flag.Duration("interval", 3*time.Second, "poll interval")
	flag.Parse()

	poller := livefeed.NewPoller(livefeed.NewClient(*baseURL), *interval)
	poller.OnUpdate = render
	poller.OnAlert = func() {
		fmt.Print("\a") // terminal bell on new orders
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.Infof("polling %s every %s", *baseURL, *interval)
	poller.Run(ctx)
}
