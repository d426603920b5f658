// Package contracts проверяет входящие JSON-документы по встроенным JSON Schema.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Имена схем, которыми пользуются обработчики.
const (
	User               = "user"
	StudentUser        = "student-user"
	Property           = "property"
	PropertyPatch      = "property-patch"
	Inquiry            = "inquiry"
	Accommodation      = "accommodation"
	AccommodationPatch = "accommodation-patch"
	Roommate           = "roommate"
	Application        = "application"
	ApplicationStatus  = "application-status"
	RentalAgreement    = "rental-agreement"
)

// baseURL нужен, чтобы $ref между файлами разрешались без обращения к диску.
const baseURL = "https://live2share.example/schemas/"

//go:embed schemas/*.json
var schemasFS embed.FS

var (
	loadOnce sync.Once
	compiled map[string]*jsonschema.Schema
	loadErr  error
)

// FieldError - одно нарушение схемы. Field - путь к полю через точку.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError возвращается, когда документ не соответствует схеме.
type ValidationError struct {
	Schema string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: validation failed: %s", e.Schema, strings.Join(parts, "; "))
}

var ErrUnknownSchema = errors.New("unknown schema")

// load компилирует все схемы один раз. Сначала все файлы добавляются как ресурсы,
// чтобы работали ссылки на common.json.
func load() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	entries, err := fs.ReadDir(schemasFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read embedded schemas: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := schemasFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", e.Name(), err)
		}
		if err := compiler.AddResource(baseURL+e.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema resource %s: %w", e.Name(), err)
		}
		names = append(names, e.Name())
	}

	out := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		if name == "common.json" {
			continue
		}
		schema, err := compiler.Compile(baseURL + name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[strings.TrimSuffix(name, ".json")] = schema
	}
	return out, nil
}

func schemas() (map[string]*jsonschema.Schema, error) {
	loadOnce.Do(func() { compiled, loadErr = load() })
	return compiled, loadErr
}

// Init компилирует схемы заранее, чтобы ошибка в схеме проявилась на старте.
func Init() error {
	_, err := schemas()
	return err
}

// Names возвращает имена всех зарегистрированных схем.
func Names() []string {
	all, err := schemas()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate проверяет тело запроса по схеме. Невалидный JSON - обычная ошибка,
// нарушения схемы - *ValidationError.
func Validate(schemaName string, body []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	schema, ok := all[schemaName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, schemaName)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &ValidationError{Schema: schemaName, Fields: flatten(ve)}
		}
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

var quotedName = regexp.MustCompile(`'([^']+)'`)

// flatten собирает листовые причины ошибки в плоский список полей.
func flatten(ve *jsonschema.ValidationError) []FieldError {
	var out []FieldError
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		out = append(out, leafErrors(e)...)
	}
	walk(ve)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func leafErrors(e *jsonschema.ValidationError) []FieldError {
	field := pointerToField(e.InstanceLocation)

	// required и additionalProperties сообщают об ошибке на уровне объекта,
	// имена полей есть только в тексте сообщения
	kw := path.Base(e.KeywordLocation)
	if kw == "required" || kw == "additionalProperties" {
		msg := "is required"
		if kw == "additionalProperties" {
			msg = "is not allowed"
		}
		var out []FieldError
		for _, m := range quotedName.FindAllStringSubmatch(e.Message, -1) {
			out = append(out, FieldError{Field: joinField(field, m[1]), Message: msg})
		}
		if len(out) > 0 {
			return out
		}
	}

	if field == "" {
		field = "(root)"
	}
	return []FieldError{{Field: field, Message: e.Message}}
}

// pointerToField превращает JSON Pointer "/images/0" в "images.0".
func pointerToField(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return strings.Join(parts, ".")
}

func joinField(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
