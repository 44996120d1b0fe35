package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TiGG-TV/Realtime/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueChat(chatID uuid.UUID)
}

type WorkerOptions struct {
	Concurrency  int
	QueueSize    int
	PollInterval time.Duration
	// StaleAfter is how long a chat may sit in processing before the poller
	// queues it again. Zero disables the check.
	StaleAfter time.Duration
}

type worker struct {
	chatRepo     repositories.ChatRepository
	conversation ConversationService
	opts         WorkerOptions
	jobQueue     chan uuid.UUID
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
}

func NewWorker(
	chatRepo repositories.ChatRepository,
	conversation ConversationService,
	opts WorkerOptions,
) Worker {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 100
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}

	return &worker{
		chatRepo:     chatRepo,
		conversation: conversation,
		opts:         opts,
		jobQueue:     make(chan uuid.UUID, opts.QueueSize),
		stopChan:     make(chan struct{}),
	}
}

func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.opts.Concurrency)

	for i := 0; i < w.opts.Concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Worker started successfully")
}

func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Println("🛑 Stopping worker...")
		close(w.stopChan)
		w.wg.Wait()
		log.Println("✅ Worker stopped")
	})
}

// EnqueueChat never blocks. When the queue is full or the worker stopped the
// chat stays queued in the database and the poller picks it up later.
func (w *worker) EnqueueChat(chatID uuid.UUID) {
	select {
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue chat %s\n", chatID)
		return
	default:
	}

	select {
	case w.jobQueue <- chatID:
		log.Printf("📥 Chat %s enqueued\n", chatID)
	default:
		log.Printf("⚠️  Queue full, chat %s left for the poller\n", chatID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case <-ctx.Done():
			return
		case chatID := <-w.jobQueue:
			err := w.conversation.ScoreChat(ctx, chatID)
			switch {
			case errors.Is(err, ErrChatNotClaimable):
				// the poller and a direct enqueue can race for the same chat
			case err != nil:
				log.Printf("❌ Worker #%d failed chat %s: %v\n", workerID, chatID, err)
			default:
				log.Printf("✅ Worker #%d completed chat %s\n", workerID, chatID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending chats poller stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.requeueStale()

			pending, err := w.chatRepo.FindPendingJobs(w.opts.Concurrency * 2)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending chats: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d pending chats\n", len(pending))
			}

			for _, chat := range pending {
				w.EnqueueChat(chat.ID)
			}
		}
	}
}

func (w *worker) requeueStale() {
	if w.opts.StaleAfter <= 0 {
		return
	}

	n, err := w.chatRepo.RequeueStale(time.Now().Add(-w.opts.StaleAfter))
	if err != nil {
		log.Printf("⚠️  Failed to requeue stale chats: %v\n", err)
		return
	}
	if n > 0 {
		log.Printf("♻️  Requeued %d chats stuck in processing\n", n)
	}
}
