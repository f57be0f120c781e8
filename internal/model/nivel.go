package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NivelAprovacao is the authority an approver acts with. Higher values
// outrank lower ones.
type NivelAprovacao int

const (
	NivelNenhum NivelAprovacao = iota
	NivelSupervisao
	NivelGerencia
	NivelDiretoria
)

var nivelNames = map[NivelAprovacao]string{
	NivelNenhum:     "Nenhum",
	NivelSupervisao: "Supervisão",
	NivelGerencia:   "Gerência",
	NivelDiretoria:  "Diretoria",
}

func (n NivelAprovacao) String() string {
	if name, ok := nivelNames[n]; ok {
		return name
	}
	return "NivelAprovacao(" + strconv.Itoa(int(n)) + ")"
}

// Valid reports whether n is one of the declared levels
func (n NivelAprovacao) Valid() bool {
	_, ok := nivelNames[n]
	return ok
}

// AtLeast reports whether n carries at least the authority of floor
func (n NivelAprovacao) AtLeast(floor NivelAprovacao) bool {
	return n >= floor
}

// ParseNivelAprovacao accepts a level name (accents and case ignored) or
// its numeric form.
func ParseNivelAprovacao(s string) (NivelAprovacao, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		n := NivelAprovacao(i)
		if !n.Valid() {
			return NivelNenhum, fmt.Errorf("nível de aprovação inválido: %d", i)
		}
		return n, nil
	}

	folded := foldAccents(s)
	for n, name := range nivelNames {
		if foldAccents(name) == folded {
			return n, nil
		}
	}
	return NivelNenhum, fmt.Errorf("nível de aprovação inválido: %q", s)
}

func (n NivelAprovacao) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON accepts both the name and the legacy integer encoding
func (n *NivelAprovacao) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var (
		parsed NivelAprovacao
		err    error
	)
	switch v := raw.(type) {
	case nil:
		parsed = NivelNenhum
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			err = fmt.Errorf("nível de aprovação inválido: %s", string(data))
			break
		}
		parsed, err = ParseNivelAprovacao(strconv.Itoa(int(v)))
	case string:
		parsed, err = ParseNivelAprovacao(v)
	default:
		err = fmt.Errorf("nível de aprovação inválido: %s", string(data))
	}
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n NivelAprovacao) Value() (driver.Value, error) {
	return int64(n), nil
}

func (n *NivelAprovacao) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*n = NivelAprovacao(v)
	case int32:
		*n = NivelAprovacao(v)
	case nil:
		*n = NivelNenhum
	default:
		return fmt.Errorf("cannot scan %T into NivelAprovacao", src)
	}
	return nil
}

// NivelAcesso is the colour-coded access tier derived from a user's cargo
type NivelAcesso string

const (
	AcessoVerde   NivelAcesso = "verde"
	AcessoAmarelo NivelAcesso = "amarelo"
	AcessoAzul    NivelAcesso = "azul"
	AcessoMarrom  NivelAcesso = "marrom"
)

// Cargo values recognised by the access mapping
const (
	CargoSolicitante   = "Solicitante"
	CargoComprador     = "Comprador"
	CargoSupervisor    = "Supervisor"
	CargoGerente       = "Gerente"
	CargoDiretor       = "Diretor"
	CargoAdministrador = "Administrador"
)

var cargoAcesso = map[string]NivelAcesso{
	CargoSolicitante:   AcessoVerde,
	CargoComprador:     AcessoVerde,
	CargoSupervisor:    AcessoAmarelo,
	CargoGerente:       AcessoAzul,
	CargoDiretor:       AcessoMarrom,
	CargoAdministrador: AcessoMarrom,
}

// Cargos lists the recognised cargos
func Cargos() []string {
	return []string{CargoSolicitante, CargoComprador, CargoSupervisor, CargoGerente, CargoDiretor, CargoAdministrador}
}

// AcessoFromCargo maps a cargo to its tier. Unknown cargos get the lowest tier.
func AcessoFromCargo(cargo string) NivelAcesso {
	if n, ok := cargoAcesso[cargo]; ok {
		return n
	}
	return AcessoVerde
}

// Autoridade returns the approval level a tier is allowed to sign with
func (a NivelAcesso) Autoridade() NivelAprovacao {
	switch a {
	case AcessoAmarelo:
		return NivelSupervisao
	case AcessoAzul:
		return NivelGerencia
	case AcessoMarrom:
		return NivelDiretoria
	default:
		return NivelNenhum
	}
}

var accentFolder = strings.NewReplacer(
	"ã", "a", "á", "a", "â", "a", "à", "a",
	"ê", "e", "é", "e",
	"í", "i",
	"õ", "o", "ó", "o", "ô", "o",
	"ú", "u",
	"ç", "c",
)

func foldAccents(s string) string {
	return accentFolder.Replace(strings.ToLower(s))
}
