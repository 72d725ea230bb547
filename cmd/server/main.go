package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"odin/api/grpcserver"
	"odin/api/pb"
	"odin/domain/orderbook"
	"odin/infra/config"
	"odin/infra/logging"
	"odin/infra/memory"
	"odin/infra/sequence"
	entrywal "odin/infra/wal/entry"
	exitwal "odin/infra/wal/exit"
	"odin/jobs/broadcaster"
	"odin/jobs/marketdata"
	"odin/service"
	"odin/snapshot"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outbox, err := exitwal.Open(cfg.Outbox.Dir)
	if err != nil {
		return err
	}
	defer outbox.Close()

	book := orderbook.NewOrderBook()
	pool := memory.NewPool(func() *orderbook.Order { return new(orderbook.Order) })
	seq := sequence.New(0)

	// Boot order: snapshot, then WAL records past the snapshot, and
	// only then open the WAL for appending. Replay may cut a torn tail
	// off the newest segment; appends must start after that cut.
	snapSeq, err := snapshot.Load(cfg.Snapshot.Dir, book, pool)
	if err != nil {
		return err
	}
	if err := service.ReplayFromWAL(cfg.WAL.Dir, snapSeq, book, pool, seq, log); err != nil {
		return err
	}
	log.Info("book restored",
		zap.Uint64("snapshot_seq", snapSeq),
		zap.Uint64("last_seq", seq.Current()))

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:             cfg.WAL.Dir,
		SegmentSize:     cfg.WAL.SegmentSize,
		SegmentDuration: cfg.SegmentDuration(),
	})
	if err != nil {
		return err
	}
	defer entryWAL.Close()

	engine := service.NewEngine(book, pool, seq, entryWAL, outbox, log)
	engine.StartSnapshotJob(ctx, cfg.Snapshot.Dir, cfg.SnapshotInterval())

	if cfg.KafkaEnabled() {
		bc, err := broadcaster.New(
			outbox, cfg.Kafka.Brokers, cfg.Kafka.TradeTopic, 0, log)
		if err != nil {
			return err
		}
		defer bc.Close()
		bc.Start(ctx)

		md := marketdata.New(
			engine, cfg.Kafka.Brokers, cfg.Kafka.DepthTopic,
			cfg.Kafka.DepthLevels, cfg.DepthInterval(), log)
		defer md.Close()
		go md.Run(ctx)
	} else {
		log.Info("kafka disabled, events stay in the outbox")
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcServer, grpcserver.New(engine, log))

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	log.Info("grpc server listening", zap.String("addr", cfg.Server.GRPCAddr))
	return grpcServer.Serve(lis)
}
