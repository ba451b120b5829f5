package gitea

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaKind - имя встроенной JSON Schema для строгой проверки ответа.
type SchemaKind string

// Встроенные схемы.
const (
	SchemaUser          SchemaKind = "user"
	SchemaEmail         SchemaKind = "email"
	SchemaGPGKey        SchemaKind = "gpg_key"
	SchemaPublicKey     SchemaKind = "public_key"
	SchemaAccessToken   SchemaKind = "access_token"
	SchemaRepository    SchemaKind = "repository"
	SchemaOrganization  SchemaKind = "organization"
	SchemaTeam          SchemaKind = "team"
	SchemaSettings      SchemaKind = "settings"
	SchemaServerVersion SchemaKind = "server_version"
)

const schemaBaseURL = "https://github.com/Kargones/gitea-vcs/schemas/"

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemasOnce sync.Once
	schemas     map[SchemaKind]*jsonschema.Schema
	schemasErr  error
)

// ValidateStrict проверяет объект по встроенной схеме kind.
// Нарушение схемы возвращается как *MalformedResponseError с Cause.
func ValidateStrict(kind SchemaKind, raw map[string]any) error {
	schemasOnce.Do(compileSchemas)
	if schemasErr != nil {
		return schemasErr
	}

	sch, ok := schemas[kind]
	if !ok {
		return fmt.Errorf("неизвестная схема %q", kind)
	}
	if err := sch.Validate(raw); err != nil {
		return &MalformedResponseError{Data: raw, Cause: err}
	}
	return nil
}

func compileSchemas() {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		schemasErr = fmt.Errorf("чтение встроенных схем: %w", err)
		return
	}

	c := jsonschema.NewCompiler()
	for _, e := range entries {
		data, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			schemasErr = fmt.Errorf("чтение схемы %s: %w", e.Name(), err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			schemasErr = fmt.Errorf("разбор схемы %s: %w", e.Name(), err)
			return
		}
		if err := c.AddResource(schemaBaseURL+e.Name(), doc); err != nil {
			schemasErr = fmt.Errorf("регистрация схемы %s: %w", e.Name(), err)
			return
		}
	}

	compiled := make(map[SchemaKind]*jsonschema.Schema)
	for _, kind := range []SchemaKind{
		SchemaUser, SchemaEmail, SchemaGPGKey, SchemaPublicKey, SchemaAccessToken,
		SchemaRepository, SchemaOrganization, SchemaTeam, SchemaSettings, SchemaServerVersion,
	} {
		sch, err := c.Compile(schemaBaseURL + string(kind) + ".json")
		if err != nil {
			schemasErr = fmt.Errorf("компиляция схемы %s: %w", kind, err)
			return
		}
		compiled[kind] = sch
	}
	schemas = compiled
}
