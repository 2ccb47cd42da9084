// Package definitions loads rippled's field, type, transaction-type and
// ledger-entry-type registry from the embedded definitions.json and
// exposes it as a singleton lookup table. Everything else in the binary
// codec treats field metadata as opaque data obtained from here; nothing
// hardcodes a field's type code or ordinal outside this package.
package definitions

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed definitions.json
var definitionsFile embed.FS

// ErrUnknownField is returned when a field name has no entry in the
// registry.
var ErrUnknownField = errors.New("definitions: unknown field")

// ErrUnknownFieldHeader is returned when a (type, field) pair has no
// corresponding field name in the registry.
var ErrUnknownFieldHeader = errors.New("definitions: unknown field header")

// ErrUnknownType is returned when a type name has no entry in the
// registry.
var ErrUnknownType = errors.New("definitions: unknown type")

// FieldHeader identifies a field by its wire type code and field code,
// the two integers rippled packs together into a field ID.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInstance describes everything the binary codec needs to know
// about one field: its wire type, its field code within that type, and
// the flags controlling variable-length framing, serialization and
// signing-field inclusion.
type FieldInstance struct {
	FieldName      string
	Type           string
	Nth            int32
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
	Header         FieldHeader
	// Ordinal orders fields for canonical STObject serialization: sort
	// first by type code, then by field code.
	Ordinal int32
}

type rawFieldInfo struct {
	Nth            int32  `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

type rawFieldEntry struct {
	Name string
	Info rawFieldInfo
}

func (e *rawFieldEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &e.Name); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Info)
}

type rawDefinitions struct {
	Types               map[string]int32  `json:"TYPES"`
	LedgerEntryTypes     map[string]int32  `json:"LEDGER_ENTRY_TYPES"`
	TransactionResults   map[string]int32  `json:"TRANSACTION_RESULTS"`
	TransactionTypes     map[string]int32  `json:"TRANSACTION_TYPES"`
	Fields               []rawFieldEntry   `json:"FIELDS"`
}

// Registry is the parsed, indexed form of definitions.json.
type Registry struct {
	types              map[string]int32
	ledgerEntryTypes   map[string]int32
	transactionResults map[string]int32
	transactionTypes   map[string]int32

	fieldsByName   map[string]*FieldInstance
	fieldsByHeader map[FieldHeader]*FieldInstance

	transactionTypeNames   map[int32]string
	ledgerEntryTypeNames   map[int32]string
	transactionResultNames map[int32]string
}

// GetFieldNameByFieldHeader returns the field name registered for fh.
func (r *Registry) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	fi, ok := r.fieldsByHeader[fh]
	if !ok {
		return "", fmt.Errorf("%w: %+v", ErrUnknownFieldHeader, fh)
	}
	return fi.FieldName, nil
}

// GetFieldInstanceByFieldName returns the full FieldInstance for
// fieldName.
func (r *Registry) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := r.fieldsByName[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, fieldName)
	}
	return fi, nil
}

// GetFieldHeaderByFieldName returns the FieldHeader for fieldName.
func (r *Registry) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, err := r.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return &fi.Header, nil
}

// CreateFieldHeader builds a FieldHeader from raw type and field codes.
func (r *Registry) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}

// TypeCode returns the wire type code registered for a type name.
func (r *Registry) TypeCode(typeName string) (int32, error) {
	code, ok := r.types[typeName]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}
	return code, nil
}

// TransactionTypeCode returns the numeric code for a transaction type
// name, e.g. "Payment" -> 0.
func (r *Registry) TransactionTypeCode(name string) (int32, error) {
	code, ok := r.transactionTypes[name]
	if !ok {
		return 0, fmt.Errorf("definitions: unknown transaction type %s", name)
	}
	return code, nil
}

// LedgerEntryTypeCode returns the numeric code for a ledger entry type
// name, e.g. "AccountRoot" -> 97.
func (r *Registry) LedgerEntryTypeCode(name string) (int32, error) {
	code, ok := r.ledgerEntryTypes[name]
	if !ok {
		return 0, fmt.Errorf("definitions: unknown ledger entry type %s", name)
	}
	return code, nil
}

// TransactionResultCode returns the numeric code for a transaction
// result name, e.g. "tesSUCCESS" -> 0.
func (r *Registry) TransactionResultCode(name string) (int32, error) {
	code, ok := r.transactionResults[name]
	if !ok {
		return 0, fmt.Errorf("definitions: unknown transaction result %s", name)
	}
	return code, nil
}

// TransactionTypeName returns the name registered for a transaction
// type code, e.g. 0 -> "Payment".
func (r *Registry) TransactionTypeName(code int32) (string, error) {
	name, ok := r.transactionTypeNames[code]
	if !ok {
		return "", fmt.Errorf("definitions: unknown transaction type code %d", code)
	}
	return name, nil
}

// LedgerEntryTypeName returns the name registered for a ledger entry
// type code, e.g. 97 -> "AccountRoot".
func (r *Registry) LedgerEntryTypeName(code int32) (string, error) {
	name, ok := r.ledgerEntryTypeNames[code]
	if !ok {
		return "", fmt.Errorf("definitions: unknown ledger entry type code %d", code)
	}
	return name, nil
}

// TransactionResultName returns the name registered for a transaction
// result code, e.g. 0 -> "tesSUCCESS".
func (r *Registry) TransactionResultName(code int32) (string, error) {
	name, ok := r.transactionResultNames[code]
	if !ok {
		return "", fmt.Errorf("definitions: unknown transaction result code %d", code)
	}
	return name, nil
}

func build() *Registry {
	data, err := definitionsFile.ReadFile("definitions.json")
	if err != nil {
		panic(fmt.Sprintf("definitions: failed to read embedded definitions.json: %v", err))
	}

	var raw rawDefinitions
	if err := json.Unmarshal(data, &raw); err != nil {
		panic(fmt.Sprintf("definitions: failed to parse embedded definitions.json: %v", err))
	}

	r := &Registry{
		types:              raw.Types,
		ledgerEntryTypes:   raw.LedgerEntryTypes,
		transactionResults: raw.TransactionResults,
		transactionTypes:   raw.TransactionTypes,
		fieldsByName:       make(map[string]*FieldInstance, len(raw.Fields)),
		fieldsByHeader:     make(map[FieldHeader]*FieldInstance, len(raw.Fields)),

		transactionTypeNames:   make(map[int32]string, len(raw.TransactionTypes)),
		ledgerEntryTypeNames:   make(map[int32]string, len(raw.LedgerEntryTypes)),
		transactionResultNames: make(map[int32]string, len(raw.TransactionResults)),
	}

	for name, code := range raw.TransactionTypes {
		r.transactionTypeNames[code] = name
	}
	for name, code := range raw.LedgerEntryTypes {
		r.ledgerEntryTypeNames[code] = name
	}
	for name, code := range raw.TransactionResults {
		r.transactionResultNames[code] = name
	}

	for _, entry := range raw.Fields {
		typeCode, ok := raw.Types[entry.Info.Type]
		if !ok {
			panic(fmt.Sprintf("definitions: field %s references unknown type %s", entry.Name, entry.Info.Type))
		}

		header := FieldHeader{TypeCode: typeCode, FieldCode: entry.Info.Nth}
		fi := &FieldInstance{
			FieldName:      entry.Name,
			Type:           entry.Info.Type,
			Nth:            entry.Info.Nth,
			IsVLEncoded:    entry.Info.IsVLEncoded,
			IsSerialized:   entry.Info.IsSerialized,
			IsSigningField: entry.Info.IsSigningField,
			Header:         header,
			Ordinal:        typeCode<<16 | entry.Info.Nth,
		}

		r.fieldsByName[entry.Name] = fi
		r.fieldsByHeader[header] = fi
	}

	return r
}

var (
	once     sync.Once
	registry *Registry
)

// Get returns the process-wide Registry singleton, parsing the embedded
// definitions.json on first use.
func Get() *Registry {
	once.Do(func() {
		registry = build()
	})
	return registry
}
