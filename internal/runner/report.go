package runner

import (
	"time"

	"ninequiz/internal/question"
)

// BuildReport combines a question set with a (possibly partial) run result.
func BuildReport(runID string, questions question.Set, result Result, runErr error, startedAt, finishedAt time.Time) Report {
	report := Report{
		RunID:      runID,
		StartedAt:  startedAt.UTC(),
		FinishedAt: finishedAt.UTC(),
		Completed:  runErr == nil && result.Total() == questions.Len(),
		Questions:  make([]QuestionReport, 0, questions.Len()),
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}
	for i, q := range questions.All() {
		item := QuestionReport{
			Number:    i + 1,
			Statement: q.Statement(),
			Choices:   q.Choices(),
			Answer:    q.AnswerIndex(),
		}
		if i < result.Total() {
			selection := result.Selections[i]
			item.Selection = &selection
			item.Outcome = result.Outcomes[i].String()
		}
		report.Questions = append(report.Questions, item)
	}
	report.Summary = summarize(questions.Len(), result)
	return report
}

func summarize(total int, result Result) Summary {
	summary := Summary{
		QuestionsTotal:     total,
		QuestionsAnswered:  result.Total(),
		QuestionsCorrect:   result.Correct(),
		QuestionsIncorrect: result.Incorrect(),
	}
	if total > 0 {
		summary.Accuracy = float64(summary.QuestionsCorrect) / float64(total)
	}
	return summary
}
