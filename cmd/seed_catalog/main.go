// seed_catalog genera el script SQL que pobla el catálogo de módulos y los planes
// a partir de catalog.yaml.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalog.yaml]
// Por defecto lee cmd/seed_catalog/catalog.yaml.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

type catalog struct {
	Modules []moduleDef `yaml:"modules"`
	Plans   []planDef   `yaml:"plans"`
}

type moduleDef struct {
	ID          int64  `yaml:"id"`
	Code        string `yaml:"code"` // vacío = slug del nombre
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type planDef struct {
	ID      int64           `yaml:"id"`
	Name    string          `yaml:"name"`
	Price   decimal.Decimal `yaml:"price"`
	Modules []int64         `yaml:"modules"`
}

func main() {
	moduleRoot := findModuleRoot()
	path := filepath.Join(moduleRoot, "cmd", "seed_catalog", "catalog.yaml")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	cat, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo inválido: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d módulos, %d planes\n", outPath, len(cat.Modules), len(cat.Plans))
}

// parseCatalog decodifica y valida: ids únicos, códigos únicos y planes que solo referencian módulos existentes.
func parseCatalog(raw []byte) (*catalog, error) {
	var cat catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, err
	}
	ids := make(map[int64]struct{}, len(cat.Modules))
	codes := make(map[string]struct{}, len(cat.Modules))
	for i := range cat.Modules {
		m := &cat.Modules[i]
		if m.ID <= 0 || strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("módulo %d: id y name son obligatorios", i)
		}
		if m.Code == "" {
			m.Code = slug(m.Name)
		}
		if _, dup := ids[m.ID]; dup {
			return nil, fmt.Errorf("módulo %d duplicado", m.ID)
		}
		if _, dup := codes[m.Code]; dup {
			return nil, fmt.Errorf("código %q duplicado", m.Code)
		}
		ids[m.ID] = struct{}{}
		codes[m.Code] = struct{}{}
	}
	sort.Slice(cat.Modules, func(i, j int) bool { return cat.Modules[i].ID < cat.Modules[j].ID })

	planIDs := make(map[int64]struct{}, len(cat.Plans))
	for _, p := range cat.Plans {
		if _, dup := planIDs[p.ID]; dup {
			return nil, fmt.Errorf("plan %d duplicado", p.ID)
		}
		planIDs[p.ID] = struct{}{}
		for _, id := range p.Modules {
			if _, ok := ids[id]; !ok {
				return nil, fmt.Errorf("plan %q: módulo %d no existe", p.Name, id)
			}
		}
	}
	sort.Slice(cat.Plans, func(i, j int) bool { return cat.Plans[i].ID < cat.Plans[j].ID })
	return &cat, nil
}

func writeSQL(w io.Writer, cat *catalog) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de módulos y planes\n")
	b.WriteString("-- Generado desde catalog.yaml (cmd/seed_catalog)\n\n")

	b.WriteString("-- 1. Módulos\n")
	b.WriteString("INSERT INTO modules (id, code, name, description) VALUES\n")
	for i, m := range cat.Modules {
		fmt.Fprintf(&b, "  (%d, '%s', '%s', '%s')", m.ID, escapeSQL(m.Code), escapeSQL(m.Name), escapeSQL(m.Description))
		b.WriteString(separator(i, len(cat.Modules)))
	}
	b.WriteString("ON CONFLICT (id) DO UPDATE SET code = EXCLUDED.code, name = EXCLUDED.name, description = EXCLUDED.description;\n\n")

	b.WriteString("-- 2. Planes (el 0 es la prueba gratuita)\n")
	b.WriteString("INSERT INTO module_payment_plans (id, name, module_ids, price) VALUES\n")
	for i, p := range cat.Plans {
		ids := p.Modules
		if ids == nil {
			ids = []int64{}
		}
		rawIDs, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  (%d, '%s', '%s'::jsonb, %s)", p.ID, escapeSQL(p.Name), rawIDs, p.Price.StringFixed(2))
		b.WriteString(separator(i, len(cat.Plans)))
	}
	b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, module_ids = EXCLUDED.module_ids, price = EXCLUDED.price;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func separator(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return "\n"
}

// slug convierte el nombre en código estable: sin acentos, minúsculas, separado por "_".
func slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	var b strings.Builder
	lastSep := true
	for _, r := range strings.ToLower(plain) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			b.WriteByte('_')
			lastSep = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
