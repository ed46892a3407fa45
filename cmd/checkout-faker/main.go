// checkout-faker posts randomized checkout payloads against a running API
// instance, for load testing and for eyeballing the notification output.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type checkoutItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type checkoutPayload struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	Caza         string         `json:"caza"`
	Items        []checkoutItem `json:"items"`
	ShippingCost float64        `json:"shippingCost"`
	TotalPrice   float64        `json:"totalPrice"`
	Notes        string         `json:"notes,omitempty"`
}

var cazas = []string{"Beirut", "Baabda", "Metn", "Keserwan", "Aley", "Chouf", "Tripoli", "Saida"}

var sizes = []string{"30ml", "50ml", "100ml"}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the order API")
	numOrders := flag.Int("count", 1, "Number of orders to send")
	interval := flag.Duration("interval", 1*time.Second, "Interval between orders")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := &http.Client{Timeout: 30 * time.Second}
	endpoint := *baseURL + "/api/orders/checkout"

	log.Printf("Sending %d checkout(s) to %s every %v", *numOrders, endpoint, *interval)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for sent := 0; sent < *numOrders; {
		sendOrder(ctx, client, endpoint)
		sent++
		if sent >= *numOrders {
			log.Printf("Sent all %d orders. Exiting.", *numOrders)
			return
		}

		select {
		case <-ctx.Done():
			log.Println("Shutting down...")
			return
		case <-ticker.C:
		}
	}
}

func sendOrder(ctx context.Context, client *http.Client, endpoint string) {
	payload := generateFakeCheckout()

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal payload: %v", err)
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	log.Printf("%s -> %d: %s", payload.Email, resp.StatusCode, respBody)
}

func generateFakeCheckout() checkoutPayload {
	itemsCount := gofakeit.Number(1, 4)
	items := make([]checkoutItem, 0, itemsCount)

	subtotal := 0.0
	for range itemsCount {
		item := checkoutItem{
			ID:       gofakeit.UUID(),
			Name:     gofakeit.ProductName(),
			Size:     sizes[rand.IntN(len(sizes))],
			Quantity: gofakeit.Number(1, 3),
			Price:    float64(gofakeit.Number(500, 15000)) / 100,
		}
		subtotal += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	shipping := 5.00

	return checkoutPayload{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		Phone:        fmt.Sprintf("03 %03d %03d", gofakeit.Number(0, 999), gofakeit.Number(0, 999)),
		Address:      gofakeit.Street(),
		City:         gofakeit.City(),
		Caza:         cazas[rand.IntN(len(cazas))],
		Items:        items,
		ShippingCost: shipping,
		TotalPrice:   subtotal + shipping,
		Notes:        gofakeit.Sentence(6),
	}
}
