package service

import (
	"context"
	"log/slog"

	"github.com/panjf2000/ants/v2"

	"github.com/banking-payment-transfers/internal/domain/transfer"
)

// WorkerPoolTransferService bounds the number of concurrently executing
// transfers by routing Execute calls through a fixed-size worker pool.
// Read operations bypass the pool.
type WorkerPoolTransferService struct {
	baseService TransferService
	pool        *ants.Pool
	logger      *slog.Logger
}

type WorkerPoolConfig struct {
	Size int
}

func NewWorkerPoolTransferService(
	baseService TransferService,
	config WorkerPoolConfig,
	logger *slog.Logger,
) (*WorkerPoolTransferService, error) {
	pool, err := ants.NewPool(config.Size)
	if err != nil {
		return nil, err
	}

	return &WorkerPoolTransferService{
		baseService: baseService,
		pool:        pool,
		logger:      logger,
	}, nil
}

type executeOutcome struct {
	result *transfer.Result
	err    error
}

// Execute submits the transfer to the worker pool and waits for its outcome.
func (s *WorkerPoolTransferService) Execute(ctx context.Context, request *transfer.Request) (*transfer.Result, error) {
	logger := s.logger
	if request.CorrelationID != "" {
		logger = s.logger.With("correlation_id", request.CorrelationID)
	}

	logger.Debug("Submitting transfer to worker pool",
		"source_account", request.SourceAccount,
		"destination_account", request.DestinationAccount,
	)

	outcomeChan := make(chan executeOutcome, 1)

	// Copy the request to avoid data races with the caller
	requestCopy := *request

	err := s.pool.Submit(func() {
		result, execErr := s.baseService.Execute(ctx, &requestCopy)
		outcomeChan <- executeOutcome{result: result, err: execErr}
	})
	if err != nil {
		logger.Error("Failed to submit transfer to worker pool", "error", err)
		return nil, err
	}

	outcome := <-outcomeChan
	return outcome.result, outcome.err
}

// GetTransferByID delegates directly to the base service
func (s *WorkerPoolTransferService) GetTransferByID(ctx context.Context, id int64) (*transfer.Record, error) {
	return s.baseService.GetTransferByID(ctx, id)
}

// GetTransfersByAccount delegates directly to the base service
func (s *WorkerPoolTransferService) GetTransfersByAccount(ctx context.Context, accountNumber string, page, perPage int) ([]*transfer.Record, int64, error) {
	return s.baseService.GetTransfersByAccount(ctx, accountNumber, page, perPage)
}

// Shutdown gracefully shuts down the worker pool.
func (s *WorkerPoolTransferService) Shutdown() {
	s.logger.Info("Shutting down worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}

// Running returns the number of running workers in the pool.
func (s *WorkerPoolTransferService) Running() int {
	return s.pool.Running()
}

// Capacity returns the capacity of the worker pool.
func (s *WorkerPoolTransferService) Capacity() int {
	return s.pool.Cap()
}
