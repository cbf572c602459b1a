package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// NoAnswerSentinel is substituted for questions the user left blank
const NoAnswerSentinel = "Không trả lời"

const (
	maxAttempts = 4
	baseDelay   = 500 * time.Millisecond
)

// promptTemplate mandates the exact HTML structure consumers parse. The
// model itself compares answers and emits the correct/wrong class; this
// component never grades locally.
const promptTemplate = `Bạn là một giáo viên chấm bài trắc nghiệm. Dưới đây là danh sách câu hỏi, đáp án đúng và câu trả lời của học sinh:

%s
Hãy chấm điểm và trả về nhận xét bằng tiếng Việt dưới dạng MỘT đoạn HTML duy nhất (không dùng markdown, không bọc trong dấu ` + "```" + `), theo đúng cấu trúc sau:
- Mở đầu bằng một đoạn tóm tắt: <p class="summary">Đúng X/%d câu</p> (X là số câu trả lời đúng).
- Sau đó, với MỖI câu hỏi theo đúng thứ tự, một khối:
<div class="question-result correct"> hoặc <div class="question-result wrong"> (tùy câu trả lời đúng hay sai), bên trong gồm:
  <h3>Câu N: nội dung câu hỏi</h3>
  <p class="status">Đúng</p> hoặc <p class="status">Sai</p>
  <p class="user-answer">Câu trả lời của bạn: ...</p>
  <p class="correct-answer">Đáp án đúng: ...</p>
  <p class="explanation">Giải thích ngắn gọn</p>
</div>
Không thêm bất kỳ nội dung nào ngoài đoạn HTML trên.`

// GeminiFeedbackGenerator implements domain.FeedbackGenerator against the
// Gemini generation API via langchaingo.
type GeminiFeedbackGenerator struct {
	llm llms.Model

	// sleep is swapped out in tests to observe the backoff schedule
	sleep func(time.Duration)
}

// NewGeminiFeedbackGenerator creates the Gemini-backed generator
func NewGeminiFeedbackGenerator(apiKey, model string) (domain.FeedbackGenerator, error) {
	client, err := googleai.New(
		context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiFeedbackGenerator{
		llm:   client,
		sleep: time.Sleep,
	}, nil
}

// Generate builds the grading prompt and calls the backend with a bounded
// retry. Only upstream-overload failures are retried: delays of 500ms,
// 1000ms and 1500ms before attempts 2, 3 and 4. Any other failure aborts
// immediately, and after four overload failures the last error propagates.
// The returned text is passed through verbatim.
func (g *GeminiFeedbackGenerator) Generate(ctx context.Context, questions []domain.FeedbackQuestion, answers []*string) (string, error) {
	l := logger.Get()
	prompt := buildPrompt(questions, answers)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			g.sleep(baseDelay * time.Duration(attempt))
		}

		text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
		if err == nil {
			return text, nil
		}
		if !isOverloaded(err) {
			return "", err
		}

		lastErr = err
		l.Warn("Feedback backend overloaded, will retry",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	l.Error("Feedback backend still overloaded after all retries",
		zap.Int("attempts", maxAttempts),
		zap.Error(lastErr),
	)
	return "", lastErr
}

// buildPrompt embeds each question, its correct answer and the resolved
// user answer, numbered from 1. Answer resolution is positional: an out of
// range or nil entry becomes the sentinel, never an error.
func buildPrompt(questions []domain.FeedbackQuestion, answers []*string) string {
	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "Câu %d: %s\n", i+1, q.Question)
		fmt.Fprintf(&sb, "Đáp án đúng: %s\n", q.CorrectAnswer)
		fmt.Fprintf(&sb, "Học sinh trả lời: %s\n\n", resolveAnswer(answers, i))
	}
	return fmt.Sprintf(promptTemplate, sb.String(), len(questions))
}

func resolveAnswer(answers []*string, i int) string {
	if i >= len(answers) || answers[i] == nil {
		return NoAnswerSentinel
	}
	return *answers[i]
}

// isOverloaded reports whether the backend signalled transient capacity
// exhaustion, the only failure class worth retrying. Gemini surfaces this
// as HTTP 503 / googleapi "overloaded" messages or a gRPC UNAVAILABLE
// status depending on transport.
func isOverloaded(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "503") ||
		strings.Contains(strings.ToLower(msg), "overloaded") ||
		strings.Contains(msg, "UNAVAILABLE") ||
		strings.Contains(msg, "Service Unavailable")
}
