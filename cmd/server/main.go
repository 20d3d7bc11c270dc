package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	"heimdall/api/grpcserver"
	"heimdall/api/statepb"
	"heimdall/infra/journal"
	"heimdall/infra/kafka"
	"heimdall/infra/outbox"
	"heimdall/infra/sequence"
	"heimdall/jobs/broadcaster"
	"heimdall/jobs/scheduler"
	"heimdall/service"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to JSON config file")
		listen     = flag.String("listen", "", "listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	// ---------------- Journal ----------------

	j, err := journal.Open(journal.Config{Dir: cfg.journalDir()})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer j.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(cfg.outboxDir())
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Notifier ----------------

	var notify *kafka.Producer
	if len(cfg.Brokers) > 0 {
		notify = kafka.NewProducer(cfg.Brokers, cfg.Topic)
		defer notify.Close()
	}

	// ---------------- Service ----------------

	svc := service.New(j, ob, sequence.New(0), notify)
	defer svc.Close()

	if err := svc.Bootstrap(cfg.checkpointDir(), cfg.journalDir()); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the table from the rules file on a completely fresh start.
	if cfg.RulesFile != "" && svc.Seq() == 0 {
		rules, err := os.ReadFile(cfg.RulesFile)
		if err != nil {
			log.Fatalf("rules file read failed: %v", err)
		}
		if _, _, err := svc.Apply(ctx, "boot", rules); err != nil {
			log.Fatalf("initial rules rejected: %v", err)
		}
	}

	// ---------------- Background jobs ----------------

	sched := scheduler.New()
	svc.RegisterCheckpointJob(sched, cfg.checkpointDir(), cfg.checkpointEvery())
	sched.Start(ctx)

	if len(cfg.Brokers) > 0 {
		bc, err := broadcaster.New(ob, cfg.Brokers, cfg.Topic, 0)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		bc.Start(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer(grpc.ForceServerCodec(statepb.Codec{}))
	grpcserver.Register(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("heimdall engine running on %s (seq=%d)", cfg.Listen, svc.Seq())

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
