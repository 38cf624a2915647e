package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/ai"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/validator"
)

type FeedbackServiceImpl struct {
	completer ai.Completer
}

func NewFeedbackService(completer ai.Completer) analytics.FeedbackService {
	return &FeedbackServiceImpl{completer: completer}
}

// GenerateFeedback implements analytics.FeedbackService
func (s *FeedbackServiceImpl) GenerateFeedback(ctx context.Context, rating int, comments string) (string, error) {
	if errs := validateFeedbackInput(rating, comments); len(errs) > 0 {
		return "", fmt.Errorf("%w: %w", analytics.ErrInvalidFeedbackInput, errs)
	}

	if !ai.IsConfigured(s.completer) {
		recordFallback(opFeedback, ai.ErrNotConfigured)
		return ComposeFeedback(rating, comments), nil
	}

	text, err := s.completer.Complete(ctx, feedbackPrompt(rating, comments), feedbackMaxTokens, feedbackTemperature)
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = ai.ErrEmptyCompletion
		}
	}
	if err != nil {
		recordFallback(opFeedback, err)
		return ComposeFeedback(rating, comments), nil
	}
	return text, nil
}

func validateFeedbackInput(rating int, comments string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if rating == 0 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating is required"})
	}
	if validator.IsEmpty(comments) {
		errs = append(errs, validator.ValidationError{Field: "comments", Message: "comments are required"})
	}
	return errs
}

// ComposeFeedback builds review feedback from rating-bucketed templates. The
// output depends only on its arguments.
func ComposeFeedback(rating int, comments string) string {
	sections := []string{
		feedbackOpening(rating),
		feedbackStrengths(rating, comments),
		feedbackDevelopment(rating, comments),
		feedbackClosing(rating),
	}
	return strings.TrimSpace(strings.Join(sections, "\n\n"))
}

func feedbackOpening(rating int) string {
	switch rating {
	case 5:
		return "The performance has been truly exceptional this period. The contributions have been outstanding and have set a new benchmark for excellence."
	case 4:
		return "This has been a period of strong performance, consistently exceeding expectations and making significant, valuable contributions to the team."
	case 3:
		return "A solid and reliable performance was delivered this period, meeting all core job expectations effectively and contributing to team goals."
	case 2:
		return "Performance has not fully met expectations this period, and there are key areas that require development and focus moving forward."
	case 1:
		return "There are significant concerns with performance this period, which has been consistently below the required standards. Immediate improvement is necessary."
	default:
		return "Regarding the performance this period:"
	}
}

func feedbackStrengths(rating int, comments string) string {
	if rating >= 3 {
		return "Key Strengths:\n- The manager highlighted the following positive points: \"" + comments + "\" This demonstrates a strong aptitude and commitment."
	}
	return "Key Strengths:\n- While this was a challenging period, the employee has the opportunity to build on their foundational skills."
}

func feedbackDevelopment(rating int, comments string) string {
	if rating <= 3 {
		return "Areas for Development:\n- Based on the manager's feedback on \"" + comments + "\", we need to focus on improving in this area. Let's work together to create a plan for development."
	}
	return "Areas for Development:\n- To reach the next level, we can focus on expanding strategic impact and taking on more leadership opportunities."
}

func feedbackClosing(rating int) string {
	switch rating {
	case 5:
		return "An outstanding effort that is highly valued. Keep up the phenomenal work!"
	case 4:
		return "A great job this period. We look forward to seeing continued growth and success."
	case 3:
		return "Thank you for the consistent effort. Let's aim to build on this foundation in the next period."
	case 2:
		return "We are committed to providing the necessary support to help bridge these gaps. Let's schedule a follow-up to discuss an action plan."
	case 1:
		return "A clear and immediate focus on the outlined areas for development is required. We will be monitoring progress closely."
	default:
		return "We will follow up to discuss next steps."
	}
}
