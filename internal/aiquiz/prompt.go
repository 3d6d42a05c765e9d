package aiquiz

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	util "github.com/saulo-duarte/studyquiz-api/internal/utils"
)

const requirementsBlock = `
Requirements:
1. Generate a variety of question types: %s
2. Difficulty level: %s
3. Questions should test understanding, not just memorization
4. Include proper distractors for multiple choice questions
5. Ensure questions are clear and unambiguous
`

const questionExamples = `      {
        "id": 1,
        "type": "multiple-choice",
        "difficulty": "easy|medium|hard",
        "question": "Question text here",
        "options": ["A", "B", "C", "D"],
        "correct_answer": "A",
        "explanation": "Explanation for the correct answer",
        "topic": "Topic/concept being tested"%[1]s
      },
      {
        "id": 2,
        "type": "short-answer",
        "difficulty": "easy|medium|hard",
        "question": "Question text here",
        "sample_answer": "Expected answer or key points",
        "explanation": "Explanation or marking scheme",
        "topic": "Topic/concept being tested"%[1]s
      },
      {
        "id": 3,
        "type": "true-false",
        "difficulty": "easy|medium|hard",
        "question": "Statement to evaluate",
        "correct_answer": true,
        "explanation": "Explanation for why this is true/false",
        "topic": "Topic/concept being tested"%[1]s
      }`

const metadataExample = `,
    "metadata": {
      "total_questions": %d,
      "difficulty_distribution": {
        "easy": 0,
        "medium": 0,
        "hard": 0
      },
      "type_distribution": {
        "multiple-choice": 0,
        "short-answer": 0,
        "true-false": 0
      },
      "generated_at": "%s",
      "source_length": %d
    }`

const closingRules = `
Important:
- Return only valid JSON, no additional text
- Ensure all questions are answerable from the provided text
- Make sure JSON is properly formatted and escaped
- Include exactly %d questions
`

const ocrInstructions = `Based on the following text content (which may contain OCR errors, incomplete sentences, or missing information), analyze the content and generate appropriate educational questions in JSON format.

Text content: %s

IMPORTANT OCR HANDLING INSTRUCTIONS:
- The provided text may be from OCR scanning and could contain:
  * Spelling errors or character misrecognition
  * Incomplete sentences or missing words
  * Fragmented or unclear passages
  * Missing context or partial information
- Please intelligently interpret the content and fill in reasonable gaps
- If text is incomplete, use your knowledge to complete concepts appropriately
- Focus on the core educational concepts that can be reasonably inferred
- If certain parts are too unclear, skip those sections and work with clearer portions

Requirements:
1. Automatically determine appropriate question types based on content
2. Automatically determine difficulty level based on content complexity
3. Automatically determine how many questions the content supports; do not add any extra question
4. Questions should test understanding, not just memorization
5. Include proper distractors for multiple choice questions
6. Ensure questions are clear and unambiguous
7. When text is unclear due to OCR errors, interpret the intended meaning
8. Complete partial concepts using educational best practices
9. If text is severely fragmented, generate questions based on identifiable concepts
`

const ocrRules = `
Source Quality Indicators:
- "clear": Question based on clearly readable text
- "interpreted": Question based on text with minor OCR errors that were corrected
- "reconstructed": Question based on heavily fragmented text that required significant interpretation

Important:
- Return only valid JSON, no additional text
- Prioritize educational value over perfect text matching
- Use context clues to resolve OCR ambiguities
- If text is too fragmented for a specific question type, choose more suitable question types
- Make sure JSON is properly formatted and escaped
- Include an "ocr_notes" field on each question to document any significant interpretations made
`

const sourceQualityField = `,
        "source_quality": "clear|interpreted|reconstructed",
        "ocr_notes": "Interpretations made, empty if none"`

func responseFormat(questions, trailer string) string {
	var b strings.Builder
	b.WriteString("\nReturn the response in this exact JSON format:\n{\n    \"questions\": [\n")
	b.WriteString(questions)
	b.WriteString("\n    ]")
	b.WriteString(trailer)
	b.WriteString("\n}\n")
	return b.String()
}

// BuildPDFPrompt embeds the passage verbatim along with a metadata block
// stamped with now.
func BuildPDFPrompt(req QuestionRequest, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following text, generate %d educational questions in JSON format.\n\nText content:\n%s\n",
		req.QuestionCount, req.Text)
	fmt.Fprintf(&b, requirementsBlock, strings.Join(req.QuestionTypes, ", "), req.Difficulty)

	metadata := fmt.Sprintf(metadataExample, req.QuestionCount, util.FormatISO(now), utf8.RuneCountInString(req.Text))
	b.WriteString(responseFormat(fmt.Sprintf(questionExamples, ""), metadata))
	fmt.Fprintf(&b, closingRules, req.QuestionCount)
	return b.String()
}

func BuildTopicPrompt(req QuestionRequest, _ time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following topic, generate %d educational questions in JSON format.\n\nText content Topic:\n%s\n",
		req.QuestionCount, req.Topic)
	fmt.Fprintf(&b, requirementsBlock, strings.Join(req.QuestionTypes, ", "), req.Difficulty)
	b.WriteString(responseFormat(fmt.Sprintf(questionExamples, ""), ""))
	fmt.Fprintf(&b, closingRules, req.QuestionCount)
	return b.String()
}

// BuildOCRPrompt leaves count, difficulty and types to the model.
func BuildOCRPrompt(req QuestionRequest, _ time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, ocrInstructions, req.Text)
	b.WriteString(responseFormat(fmt.Sprintf(questionExamples, sourceQualityField), ""))
	b.WriteString(ocrRules)
	return b.String()
}
