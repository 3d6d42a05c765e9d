package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/studyquiz-api/internal/aiquiz"
	"github.com/saulo-duarte/studyquiz-api/internal/container"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one question set and print it as JSON",
	Example: `  quizgen generate --variant topic --topic "Photosynthesis" --count 3
  quizgen generate --variant ocr --file scan.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("variant")
		variant, ok := aiquiz.VariantByName(name)
		if !ok {
			return fmt.Errorf("unknown variant %q (want pdf, topic or ocr)", name)
		}

		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		c, err := container.New(cmd.Context())
		if err != nil {
			return err
		}

		out, err := c.AIQuizContainer.Service.GenerateQuestions(cmd.Context(), variant, req)
		if err != nil {
			return err
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, out, "", "  "); err != nil {
			return fmt.Errorf("format output: %w", err)
		}
		pretty.WriteByte('\n')
		_, err = pretty.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	f := generateCmd.Flags()
	f.String("variant", "topic", "Input variant: pdf, topic or ocr")
	f.String("text", "", "Source text (pdf and ocr variants)")
	f.String("file", "", "Read source text from a file, - for stdin")
	f.String("topic", "", "Topic label (topic variant)")
	f.Int("count", aiquiz.DefaultQuestionCount, "Number of questions")
	f.String("difficulty", aiquiz.DefaultDifficulty, "Difficulty level")
	f.StringSlice("types", aiquiz.DefaultQuestionTypes(), "Question types")
}

func requestFromFlags(cmd *cobra.Command) (aiquiz.QuestionRequest, error) {
	f := cmd.Flags()
	req := aiquiz.NewQuestionRequest()

	count, _ := f.GetInt("count")
	req.QuestionCount = aiquiz.Count(count)
	req.Difficulty, _ = f.GetString("difficulty")
	req.QuestionTypes, _ = f.GetStringSlice("types")
	req.Topic, _ = f.GetString("topic")
	req.Text, _ = f.GetString("text")

	path, _ := f.GetString("file")
	if path == "" {
		return req, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("read source text: %w", err)
	}
	req.Text = string(data)
	return req, nil
}
