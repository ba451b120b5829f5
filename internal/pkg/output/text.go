package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const summaryDivider = "══════════════════════════════════════════════════════"

// TextWriter форматирует Result в человекочитаемый текст:
// заголовок команды, ошибка, данные в YAML и сводка.
type TextWriter struct {
	title cases.Caser
}

// NewTextWriter создаёт TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{title: cases.Title(language.English)}
}

// Write форматирует result в текст.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", t.heading(result.Command), result.Status); err != nil {
		return err
	}

	if result.Error != nil {
		if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message); err != nil {
			return err
		}
	}

	if result.Data != nil {
		data, err := renderYAML(result.Data)
		if err != nil {
			return fmt.Errorf("не удалось сериализовать Data: %w", err)
		}
		if _, err := io.WriteString(w, data); err != nil {
			return err
		}
	}

	// Для ошибок сводка не выводится.
	if result.Status != StatusError {
		return t.writeSummary(w, result)
	}
	return nil
}

// heading превращает имя команды "add-gpg-key" в "Add Gpg Key".
func (t *TextWriter) heading(command string) string {
	return t.title.String(strings.ReplaceAll(command, "-", " "))
}

// renderYAML выводит данные в YAML с именами полей из JSON-тегов.
// Данные сначала проходят через JSON, чтобы сохранить имена полей API
// и точные целые значения идентификаторов.
func renderYAML(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(plainNumbers(generic)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// plainNumbers заменяет json.Number на int64, uint64 или float64.
// json.Number - строковый тип, и yaml.v3 вывел бы его в кавычках.
func plainNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = plainNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = plainNumbers(item)
		}
		return val
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if n, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

func (t *TextWriter) writeSummary(w io.Writer, result *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n📊 Сводка\n%s\n", summaryDivider, summaryDivider)

	if result.Metadata != nil && result.Metadata.DurationMs > 0 {
		fmt.Fprintf(&b, "⏱️  Время выполнения: %s\n", formatDuration(result.Metadata.DurationMs))
	}
	if result.Summary != nil {
		for _, m := range result.Summary.KeyMetrics {
			if m.Unit != "" {
				fmt.Fprintf(&b, "📈 %s: %s %s\n", m.Name, m.Value, m.Unit)
			} else {
				fmt.Fprintf(&b, "📈 %s: %s\n", m.Name, m.Value)
			}
		}
		if result.Summary.WarningsCount > 0 {
			fmt.Fprintf(&b, "\n⚠️  Предупреждений: %d\n", result.Summary.WarningsCount)
			for _, warn := range result.Summary.Warnings {
				fmt.Fprintf(&b, "   • %s\n", warn)
			}
		}
	}
	fmt.Fprintf(&b, "%s\n", summaryDivider)

	_, err := io.WriteString(w, b.String())
	return err
}

// formatDuration форматирует миллисекунды: "150мс", "2.5с", "1м 5с".
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dмс", ms)
	}
	sec := ms / 1000
	if sec < 60 {
		return fmt.Sprintf("%.1fс", float64(ms)/1000)
	}
	return fmt.Sprintf("%dм %dс", sec/60, sec%60)
}
