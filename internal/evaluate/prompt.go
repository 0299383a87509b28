package evaluate

import (
	"fmt"
	"strings"

	"github.com/abhisek/promptquest/internal/challenge"
	"github.com/abhisek/promptquest/internal/i18n"
)

const rubricSystemPromptJA = `あなたはプロンプトエンジニアリングの評価者です。ユーザーが提出したプロンプトを以下の基準で評価してください：
1. 課題の要件を満たしているか (0-30点)
2. プロンプトの明確さと具体性 (0-30点)
3. 技術的な適切さ (0-20点)
4. 創造性と工夫 (0-20点)

合計100点満点で採点し、以下のJSON形式で返してください：
{
  "score": <0-100の数値>,
  "feedback": "<具体的なフィードバック>",
  "strengths": ["<良かった点1>", "<良かった点2>"],
  "improvements": ["<改善点1>", "<改善点2>"]
}`

const rubricSystemPromptEN = `You are a prompt engineering evaluator. Evaluate the submitted prompt based on these criteria:
1. Meets challenge requirements (0-30 points)
2. Clarity and specificity (0-30 points)
3. Technical appropriateness (0-20 points)
4. Creativity and ingenuity (0-20 points)

Rate out of 100 total points and return in this JSON format:
{
  "score": <number 0-100>,
  "feedback": "<specific feedback>",
  "strengths": ["<strength 1>", "<strength 2>"],
  "improvements": ["<improvement 1>", "<improvement 2>"]
}`

// rubricSystemPrompt returns the fixed grading instruction in the
// requested language.
func rubricSystemPrompt(lang i18n.Lang) string {
	if lang == i18n.LangEN {
		return rubricSystemPromptEN
	}
	return rubricSystemPromptJA
}

// buildGradingMessage embeds the challenge texts and the user's prompt
// into the grading request, localized to lang.
func buildGradingMessage(userPrompt string, ch *challenge.Challenge, lang i18n.Lang) string {
	var b strings.Builder

	if lang == i18n.LangEN {
		b.WriteString(fmt.Sprintf("Challenge: %s\n", ch.Title.For(lang)))
		b.WriteString(fmt.Sprintf("Description: %s\n", ch.Description.For(lang)))
		b.WriteString(fmt.Sprintf("Goal: %s\n", ch.Goal.For(lang)))
		b.WriteString("\nUser's prompt:\n")
		b.WriteString(userPrompt)
		b.WriteString("\n\nPlease evaluate the above prompt.")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("課題: %s\n", ch.Title.For(lang)))
	b.WriteString(fmt.Sprintf("説明: %s\n", ch.Description.For(lang)))
	b.WriteString(fmt.Sprintf("目標: %s\n", ch.Goal.For(lang)))
	b.WriteString("\nユーザーのプロンプト:\n")
	b.WriteString(userPrompt)
	b.WriteString("\n\n上記のプロンプトを評価してください。")
	return b.String()
}

// Localized placeholder strings for degraded results. The evaluation
// pipeline carries its own strings; the locale store is rendering-only.
func fallbackStrength(lang i18n.Lang) string {
	if lang == i18n.LangEN {
		return "Submitted a prompt"
	}
	return "プロンプトを提出しました"
}

func fallbackImprovement(lang i18n.Lang) string {
	if lang == i18n.LangEN {
		return "Failed to parse evaluation format"
	}
	return "評価形式の解析に失敗しました"
}
