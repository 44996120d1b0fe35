package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TiGG-TV/Realtime/internal/models"
)

func TestWorkerScoresEnqueuedChat(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 40"))
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)

	w := NewWorker(f.chats, f.svc, WorkerOptions{Concurrency: 2, QueueSize: 4, PollInterval: time.Hour})
	w.Start(context.Background())
	defer w.Stop()

	w.EnqueueChat(chat.ID)

	require.Eventually(t, func() bool {
		return f.chats.status(chat.ID) == models.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWorkerPollerPicksUpQueuedChats(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 40"))
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)

	w := NewWorker(f.chats, f.svc, WorkerOptions{Concurrency: 1, PollInterval: 20 * time.Millisecond})
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool {
		return f.chats.status(chat.ID) == models.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	f := newConversationFixture(nil)
	w := NewWorker(f.chats, f.svc, WorkerOptions{})
	w.Start(context.Background())

	w.Stop()
	w.Stop()
}

func TestWorkerEnqueueDoesNotBlockWhenFull(t *testing.T) {
	f := newConversationFixture(nil)
	w := NewWorker(f.chats, f.svc, WorkerOptions{QueueSize: 1, PollInterval: time.Hour})

	done := make(chan struct{})
	go func() {
		w.EnqueueChat(uuid.New())
		w.EnqueueChat(uuid.New())
		w.EnqueueChat(uuid.New())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("EnqueueChat blocked on a full queue")
	}
}

func TestWorkerRequeuesStaleProcessingChats(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 40"))
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)
	f.chats.setStatus(chat.ID, models.StatusProcessing, time.Now().Add(-time.Hour))

	w := NewWorker(f.chats, f.svc, WorkerOptions{Concurrency: 1, PollInterval: 20 * time.Millisecond, StaleAfter: time.Minute})
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool {
		return f.chats.status(chat.ID) == models.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWorkerLeavesRecentProcessingChats(t *testing.T) {
	f := newConversationFixture(replyWith("Overall Score: 40"))
	chat, err := f.svc.SubmitChat(context.Background(), SubmitChatInput{UserID: "u1", ProfileID: "jake", Transcript: "user: hi"})
	require.NoError(t, err)
	f.chats.setStatus(chat.ID, models.StatusProcessing, time.Now())

	w := NewWorker(f.chats, f.svc, WorkerOptions{Concurrency: 1, PollInterval: 10 * time.Millisecond, StaleAfter: time.Hour})
	w.Start(context.Background())
	defer w.Stop()

	require.Never(t, func() bool {
		return f.chats.status(chat.ID) != models.StatusProcessing
	}, 200*time.Millisecond, 10*time.Millisecond)
}
