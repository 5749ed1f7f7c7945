package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/foldcal/internal/potatolog"
)

func TestMemoryLogReaderWriter(t *testing.T) {

	t.Run("zerolog entries", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(10)
		logger := zerolog.New(w)
		logger.Info().Int("position", 3).Msg("settled")

		entries := w.Get()
		if len(entries) != 1 {
			t.Fatal("expected one entry, got", len(entries))
		}
		if entries[0]["message"] != "settled" || entries[0]["level"] != "info" {
			t.Error("unexpected entry", entries[0])
		}
		if entries[0]["position"] != float64(3) {
			t.Error("unexpected field value", entries[0]["position"])
		}
	})

	t.Run("bounded", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(3)
		logger := zerolog.New(w)
		for i := 0; i < 5; i++ {
			logger.Debug().Int("i", i).Msg("")
		}
		entries := w.Get()
		if len(entries) != 3 {
			t.Fatal("expected three entries, got", len(entries))
		}
		if entries[0]["i"] != float64(2) || entries[2]["i"] != float64(4) {
			t.Error("expected the oldest entries to be dropped", entries)
		}
	})

	t.Run("copy", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(3)
		logger := zerolog.New(w)
		logger.Info().Msg("a")
		entries := w.Get()
		entries[0] = nil
		if w.Get()[0] == nil {
			t.Error("modifying the result changed the log")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(3)
		if _, err := w.Write([]byte("not json")); err == nil {
			t.Error("expected error")
		}
	})
}
