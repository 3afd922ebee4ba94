package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/wfreview/model"
	"github.com/viant/wfreview/service/loader"
)

func decode(t *testing.T, data string) *model.Document {
	t.Helper()
	doc, err := loader.Decode([]byte(data))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, doc *model.Document, sections ...Section) string {
	t.Helper()
	buf := &bytes.Buffer{}
	var opts []Option
	if len(sections) > 0 {
		opts = append(opts, WithSections(sections...))
	}
	require.NoError(t, New(DefaultConfig(), opts...).Render(context.Background(), doc, NewPrinter(buf)))
	return buf.String()
}

func assertText(t *testing.T, expect, actual string) {
	t.Helper()
	if expect == actual {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expect),
		B:        difflib.SplitLines(actual),
		FromFile: "expect",
		ToFile:   "actual",
		Context:  2,
	})
	t.Errorf("report mismatch:\n%s", diff)
}

func TestService_RenderGolden(t *testing.T) {
	data, err := os.ReadFile("testdata/workflow.json")
	require.NoError(t, err)
	expect, err := os.ReadFile("testdata/workflow.txt")
	require.NoError(t, err)

	actual := render(t, decode(t, string(data)))
	assertText(t, string(expect), actual)
}

func TestService_RenderDeterministic(t *testing.T) {
	data, err := os.ReadFile("testdata/workflow.json")
	require.NoError(t, err)
	first := render(t, decode(t, string(data)))
	second := render(t, decode(t, string(data)))
	assertText(t, first, second)
}

func TestService_Sections(t *testing.T) {
	var names []string
	for _, section := range New(DefaultConfig()).Sections() {
		names = append(names, section.Name())
	}
	expect := []string{"steps", "fields", "table", "relationships", "print-config", "validation"}
	if diff := cmp.Diff(expect, names); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestService_RenderMinimal(t *testing.T) {
	actual := render(t, decode(t, `{"relatives": [{"id":"s1","type":"start"}], "relationships": []}`))

	assert.Contains(t, actual, "🔄 WORKFLOW STEPS (1 bước):\n  1. N/A\n     - ID: s1\n     - Type: start\n     - Status: N/A\n     - Phase Type: N/A\n\n")
	assert.NotContains(t, actual, "SLA:")
	assert.Contains(t, actual, "Số mối quan hệ: 0\n")
	assert.Contains(t, actual, "✅ Không có lỗi cấu trúc\n⚠️ CẢNH BÁO:\n  - Workflow có ít hơn 2 bước\n")
	assert.NotContains(t, actual, "Tổng số trường")
	assert.NotContains(t, actual, "Số cột")
}

func TestService_RenderEmptyDocument(t *testing.T) {
	actual := render(t, decode(t, `{}`))

	expect := `============================================================
📋 PHÂN TÍCH CẤU HÌNH WORKFLOW
============================================================
📝 PHÂN TÍCH FORM FIELDS:
----------------------------------------

📊 PHÂN TÍCH CẤU TRÚC BẢNG:
----------------------------------------

🔗 PHÂN TÍCH MỐI QUAN HỆ:
----------------------------------------

🖨️ PHÂN TÍCH CẤU HÌNH IN ẤN:
----------------------------------------

✅ VALIDATION:
----------------------------------------
❌ LỖI:
  - Thiếu section: relatives
  - Thiếu section: relationships
`
	assertText(t, expect, actual)
}

func fieldsDocument(required, optional int) string {
	var items []string
	for i := 0; i < required; i++ {
		items = append(items, fmt.Sprintf(`{"type":"text","name":"r%d","conditions":{"required":true}}`, i+1))
	}
	for i := 0; i < optional; i++ {
		items = append(items, fmt.Sprintf(`{"type":"date","name":"o%d"}`, i+1))
	}
	return `{"individual": [` + strings.Join(items, ",") + `]}`
}

func TestFieldsSection_Truncation(t *testing.T) {
	testCases := []struct {
		name       string
		required   int
		optional   int
		expectTail string
		expectMore int
	}{
		{name: "eleven required", required: 11, optional: 0, expectTail: "  - r10\n  ... và 1 trường khác\n", expectMore: 1},
		{name: "exactly ten", required: 10, optional: 0, expectTail: "  - r10\n\n🟢"},
		{name: "twenty five optional", required: 0, optional: 25, expectTail: "  - o10\n  ... và 15 trường khác\n", expectMore: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := decode(t, fieldsDocument(tc.required, tc.optional))
			actual := render(t, doc, NewFieldsSection(DefaultConfig()))
			assert.Contains(t, actual, tc.expectTail)
			assert.NotContains(t, actual, "r11\n")
			assert.NotContains(t, actual, "o11\n")
			assert.Equal(t, tc.expectMore, strings.Count(actual, "trường khác"))
		})
	}
}

func TestFieldsSection_DisplayLimit(t *testing.T) {
	config := DefaultConfig()
	config.DisplayLimit = 2
	actual := render(t, decode(t, fieldsDocument(3, 0)), NewFieldsSection(config))
	assert.Contains(t, actual, "🔴 Trường bắt buộc (3):\n  - r1\n  - r2\n  ... và 1 trường khác\n")
}

func TestAnalyzeFields(t *testing.T) {
	doc := decode(t, `{"individual": [
  {"type": "text", "name": "a", "conditions": {"required": true}},
  {"type": "select", "name": "b"},
  {"name": "c", "conditions": {"required": true}},
  {"type": "text"},
  {"type": "select", "name": "e", "conditions": {"required": false}}
]}`)

	stats := AnalyzeFields(doc.Fields(), "N/A", "unknown")
	expect := &FieldStats{
		Total:    5,
		Types:    []TypeCount{{Type: "text", Count: 2}, {Type: "select", Count: 2}, {Type: "unknown", Count: 1}},
		Required: []string{"a", "c"},
		Optional: []string{"b", "N/A", "e"},
	}
	if diff := cmp.Diff(expect, stats); diff != "" {
		t.Errorf("field stats mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, stats.Total, len(stats.Required)+len(stats.Optional))
}

func TestPrintConfigSection(t *testing.T) {
	doc := decode(t, `{"relatives": [
  {"id": "a", "print-config": {"filename": "a.docx"}},
  {"id": "b"},
  {"id": "c", "print-config": {"template-url": "u", "landscape": false, "parameters": [1, 2, 3]}}
]}`)
	actual := render(t, doc, NewPrintConfigSection(DefaultConfig()))
	expect := `
🖨️ PHÂN TÍCH CẤU HÌNH IN ẤN:
----------------------------------------
Template: a.docx
URL: N/A
Landscape: false
Số tham số: 0
Template: N/A
URL: u
Landscape: false
Số tham số: 3
`
	assertText(t, expect, actual)
}

func TestTableSection_WithoutColumns(t *testing.T) {
	actual := render(t, decode(t, `{"table": {}}`), NewTableSection(DefaultConfig()))
	assert.True(t, strings.HasSuffix(actual, "Số cột: 0\n"))
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestService_RenderWriteError(t *testing.T) {
	writer := &failingWriter{}
	err := New(DefaultConfig()).Render(context.Background(), decode(t, `{}`), NewPrinter(writer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, writer.writes)
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())

	config.DisplayLimit = 0
	config.MinSteps = -1
	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "displayLimit")
	assert.Contains(t, err.Error(), "minSteps")
}
