// Package client provides commands that drive a running table server
package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/onenight-api/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the table server",
	Long:  `Client commands play a round against a running server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Table lifecycle
	ClientCmd.AddCommand(createTableCmd)
	ClientCmd.AddCommand(getTableCmd)
	ClientCmd.AddCommand(redealCmd)
	ClientCmd.AddCommand(deleteTableCmd)

	// Night
	ClientCmd.AddCommand(viewCardCmd)
	ClientCmd.AddCommand(swapCmd)
	ClientCmd.AddCommand(swapCenterCmd)
	ClientCmd.AddCommand(nightStepsCmd)
	ClientCmd.AddCommand(copyRoleCmd)
	ClientCmd.AddCommand(runNightCmd)
	ClientCmd.AddCommand(endNightCmd)
	ClientCmd.AddCommand(advanceTurnCmd)

	// Day
	ClientCmd.AddCommand(resolveVoteCmd)
	ClientCmd.AddCommand(listRoundsCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// call sends one request and prints the response as JSON
func call(cmd *cobra.Command, method string, fields map[string]any) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewTableServiceClient(conn).Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// intArgs parses positional seat or center numbers
func intArgs(args []string) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = n
	}
	return out, nil
}

func tableOnly(method string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return call(cmd, method, map[string]any{"table_id": args[0]})
	}
}
