package main

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/zkonge/pluginx"
	"github.com/zkonge/pluginx/example/kvproto"
	"github.com/zkonge/pluginx/example/kvshared"
	"github.com/zkonge/pluginx/plugintrace"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	if len(os.Args) < 2 {
		sugar.Fatal("usage: kv-host <path-to-kv-plugin>")
	}

	ctx := plugintrace.WithClientTracer(context.Background(), plugintrace.ClientLogTracer(sugar))

	builder, err := pluginx.NewClientBuilder(ctx, &pluginx.ClientConfig{
		Handshake:      kvshared.HandshakeConfig,
		Cmd:            exec.Command(os.Args[1]),
		StartupTimeout: 10 * time.Second,
	})
	if err != nil {
		sugar.Fatalf("failed to start plugin: %s", err)
	}
	if err := builder.AddPlugin(ctx, kvshared.KvPlugin{}); err != nil {
		sugar.Fatalf("failed to add KV plugin: %s", err)
	}
	client := builder.Build()

	// Drain the stdio relay from its own goroutine so the plugin's log
	// path never blocks on us.
	stdio := client.Stdio()
	go func() {
		for {
			chunk, err := stdio.Recv(ctx)
			if err != nil {
				return
			}
			switch chunk.Channel {
			case pluginx.StdioStdout:
				sugar.Infof("plugin stdout: %s", chunk.Data)
			case pluginx.StdioStderr:
				sugar.Infof("plugin stderr: %s", chunk.Data)
			default:
				sugar.Infof("plugin sent invalid stdio chunk")
			}
		}
	}()

	kv, ok := pluginx.Dispense[kvproto.KvClient](client)
	if !ok {
		sugar.Fatal("KV plugin was not registered")
	}

	if _, err := kv.Put(ctx, &kvproto.PutRequest{Key: "aaa", Value: []byte("value")}); err != nil {
		sugar.Fatalf("Put failed: %s", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	tick := time.Tick(1 * time.Second)

Events:
	for {
		select {
		case <-tick:
			resp, err := kv.Get(ctx, &kvproto.GetRequest{Key: "aaa"})
			if err != nil {
				sugar.Errorf("Get failed: %s", err)
				continue
			}
			sugar.Infof("aaa = %s", resp.GetValue())
		case <-interrupt:
			break Events
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("failed to shut down plugin: %s", err)
	}
}
