package models

import (
	"database/sql"
	"encoding/json"
)

// Practice content attached to an internship: quiz questions with
// keyed options, coding problems with test cases, and interview
// questions with suggested answers.

type QuizQuestion struct {
	ID               int             `json:"id"`
	InternshipID     int             `json:"internship_id"`
	QuestionText     string          `json:"question_text"`
	Options          json.RawMessage `json:"options"`
	CorrectAnswerKey string          `json:"correct_answer_key"`
}

type CodingQuestion struct {
	ID               int             `json:"id"`
	InternshipID     int             `json:"internship_id"`
	Title            string          `json:"title"`
	ProblemStatement string          `json:"problem_statement"`
	TestCases        json.RawMessage `json:"test_cases"`
}

type InterviewQuestion struct {
	ID              int    `json:"id"`
	InternshipID    int    `json:"internship_id"`
	QuestionText    string `json:"question_text"`
	SuggestedAnswer string `json:"suggested_answer"`
}

type QuestionModel struct {
	DB *sql.DB
}

func NewQuestionModel(db *sql.DB) *QuestionModel {
	return &QuestionModel{DB: db}
}

func (m *QuestionModel) QuizByInternship(internshipID int) ([]QuizQuestion, error) {
	questions := []QuizQuestion{}
	query := `
		SELECT id, internship_id, question_text, options, correct_answer_key
		FROM quiz_questions WHERE internship_id = $1 ORDER BY id
	`
	rows, err := m.DB.Query(query, internshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q QuizQuestion
		var options []byte
		if err := rows.Scan(&q.ID, &q.InternshipID, &q.QuestionText, &options, &q.CorrectAnswerKey); err != nil {
			return nil, err
		}
		q.Options = options
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (m *QuestionModel) CodingByInternship(internshipID int) ([]CodingQuestion, error) {
	questions := []CodingQuestion{}
	query := `
		SELECT id, internship_id, title, problem_statement, test_cases
		FROM coding_questions WHERE internship_id = $1 ORDER BY id
	`
	rows, err := m.DB.Query(query, internshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q CodingQuestion
		var testCases []byte
		if err := rows.Scan(&q.ID, &q.InternshipID, &q.Title, &q.ProblemStatement, &testCases); err != nil {
			return nil, err
		}
		q.TestCases = testCases
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (m *QuestionModel) InterviewByInternship(internshipID int) ([]InterviewQuestion, error) {
	questions := []InterviewQuestion{}
	query := `
		SELECT id, internship_id, question_text, COALESCE(suggested_answer, '')
		FROM interview_questions WHERE internship_id = $1 ORDER BY id
	`
	rows, err := m.DB.Query(query, internshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q InterviewQuestion
		if err := rows.Scan(&q.ID, &q.InternshipID, &q.QuestionText, &q.SuggestedAnswer); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
