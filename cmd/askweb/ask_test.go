package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/askweb/askweb"
	main "github.com/askweb/askweb/cmd/askweb"
	"github.com/askweb/askweb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question and prints answer", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				require.Equal(t, "What is the capital of France?", question)
				return "The capital of France is Paris.", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Asker:  asker,
		}

		cmd := &main.AskCmd{Question: "What is the capital of France?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "The capital of France is Paris.")
	})

	t.Run("streams chunks to stdout", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskStreamFn: func(_ context.Context, question string, fn askweb.StreamFunc) error {
				for _, chunk := range []string{"The capital ", "is Paris."} {
					if err := fn(chunk); err != nil {
						return err
					}
				}
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Asker:  asker,
		}

		cmd := &main.AskCmd{Question: "capital?", Stream: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "The capital is Paris.\n", stdout.String())
	})

	t.Run("reports empty corpus on stderr", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				return "", askweb.Errorf(askweb.EEMPTYCORPUS, "no documents have been scraped yet")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Asker:  asker,
		}

		cmd := &main.AskCmd{Question: "anything"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no documents have been scraped yet")
		assert.Empty(t, stdout.String())
	})
}
