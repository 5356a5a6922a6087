package prompts

import (
	"testing"

	"github.com/helmcode/news-analyzer/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	text := "  Scientists confirm   chocolate cures everything!\n"
	msgs := BuildMessages(text)

	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, SystemPrompt, msgs[0].Content)
	assert.Equal(t, llm.RoleUser, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, text)
	assert.Equal(t, "Analyze this news text for potential misinformation: "+text, msgs[1].Content)
}

func TestSystemPromptDescribesShape(t *testing.T) {
	for _, key := range []string{"credibilityScore", "analysis", "redFlags", "recommendations"} {
		assert.Contains(t, SystemPrompt, key)
	}
}
