// Package client provides test commands for the memento editor gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/handlers/mementos/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the memento editor",
	Long:  `Client commands exercise a running memento editor server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(openCmd)
	ClientCmd.AddCommand(updateCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(tooltipCmd)
	ClientCmd.AddCommand(confirmCmd)
	ClientCmd.AddCommand(cancelCmd)
}

// call dials the server, invokes method and prints the JSON response
func call(cmd *cobra.Command, method string, req map[string]any) error {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewClient(conn).Call(ctx, method, req)
	if err != nil {
		return describe(method, err)
	}

	return printStruct(cmd, resp)
}

func describe(method string, err error) error {
	converted := errors.FromGRPCError(err)
	return fmt.Errorf("%s failed [%s]: %s", method, errors.GetCode(converted), errors.GetMessage(converted))
}

func printStruct(cmd *cobra.Command, resp *structpb.Struct) error {
	raw, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}

	var pretty any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		return err
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
