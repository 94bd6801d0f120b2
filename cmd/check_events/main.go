package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/light-bringer/karting-service/internal/transport/grpc/booking"
)

func main() {
	addr := flag.String("addr", "localhost:9090", "gRPC server address")
	eventType := flag.String("type", "", "only show events of this type, e.g. booking.created")
	status := flag.String("status", "", "only show events with this status (pending, completed, failed)")
	limit := flag.Int("limit", 10, "maximum number of events")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := map[string]interface{}{"limit": *limit}
	if *eventType != "" {
		req["event_type"] = *eventType
	}
	if *status != "" {
		req["status"] = *status
	}

	resp, err := booking.NewClient(conn).Call(ctx, "ListEvents", req)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	events := resp.GetFields()["events"].GetListValue().GetValues()
	if len(events) == 0 {
		fmt.Println("No events found!")
		return
	}

	fmt.Printf("Found %d events:\n\n", len(events))
	for i, v := range events {
		e := v.GetStructValue().GetFields()
		fmt.Printf("%d. %s\n", i+1, e["event_type"].GetStringValue())
		fmt.Printf("   Event ID: %s\n", e["event_id"].GetStringValue())
		fmt.Printf("   Aggregate ID: %s\n", e["aggregate_id"].GetStringValue())
		fmt.Printf("   Status: %s (retries: %.0f)\n", e["status"].GetStringValue(), e["retry_count"].GetNumberValue())
		fmt.Printf("   Created: %s\n", e["created_at"].GetStringValue())
		fmt.Printf("   Payload: %s\n\n", e["payload"].GetStringValue())
	}
}
