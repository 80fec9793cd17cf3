// Package cli implementa la interfaz interactiva de consola: menú, prompts y reporte.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	apppayroll "github.com/jhoicas/nomina-cli/internal/application/payroll"
	"github.com/jhoicas/nomina-cli/internal/domain"
	"github.com/jhoicas/nomina-cli/internal/domain/entity"
	"github.com/jhoicas/nomina-cli/pkg/logger"
)

const (
	divider = "----------------"

	// maxNameLen tope del nombre en bytes; más largo se rechaza y se vuelve a pedir.
	maxNameLen = 256
	// maxAmountLen tope del sueldo en caracteres. Junto con el rechazo de exponentes
	// acota la magnitud del monto.
	maxAmountLen = 32
)

// errEndOfInput la entrada se agotó (Ctrl+D o fin del archivo); cierra la sesión como la opción 5.
var errEndOfInput = errors.New("fin de la entrada")

// menuDepartments opción del menú -> departamento del alta.
var menuDepartments = map[string]entity.Department{
	"1": entity.DepartmentSales,
	"2": entity.DepartmentIT,
	"3": entity.DepartmentHR,
}

// Handler sesión interactiva sobre un Registry.
type Handler struct {
	registry *apppayroll.Registry
	log      *logger.Logger
	in       *bufio.Reader
	out      io.Writer
	title    string
	err      error // primer error de escritura
}

// NewHandler construye la sesión. in/out suelen ser os.Stdin/os.Stdout.
func NewHandler(registry *apppayroll.Registry, log *logger.Logger, in io.Reader, out io.Writer, title string) *Handler {
	return &Handler{
		registry: registry,
		log:      log,
		in:       bufio.NewReader(in),
		out:      out,
		title:    title,
	}
}

// Run ejecuta el ciclo del menú hasta "5. Salir" o fin de la entrada.
// Las entradas inválidas nunca cortan la sesión; solo un error de E/S la aborta.
func (h *Handler) Run() error {
	h.printHeader()
	for h.err == nil {
		h.printMenu()
		choice, err := h.readLine("Seleccione opcion: ")
		if err != nil {
			return h.endOfSession(err)
		}

		if dept, ok := menuDepartments[choice]; ok {
			if err := h.handleAddEmployee(dept); err != nil {
				return h.endOfSession(err)
			}
			continue
		}
		switch choice {
		case "4":
			h.printReport()
		case "5":
			return h.err
		default:
			h.println("Error")
		}
	}
	return h.err
}

// handleAddEmployee pide nombre y sueldo bruto y registra al empleado.
func (h *Handler) handleAddEmployee(dept entity.Department) error {
	name, err := h.promptNonEmpty("Nombre: ")
	if err != nil {
		return err
	}
	gross, err := h.promptDecimal("Sueldo Bruto: ")
	if err != nil {
		return err
	}

	employee, err := h.registry.Add(name, dept, gross)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.println("Error: " + err.Error())
			return nil
		}
		return err
	}
	h.println(fmt.Sprintf("Guardado %s.", employee.Department.Label()))
	return nil
}

func (h *Handler) printReport() {
	if h.registry.IsEmpty() {
		h.println("No hay nadie")
		return
	}
	for _, e := range h.registry.List() {
		h.println("Emp: " + e.Name)
		h.println("Depto: " + e.Department.Label())
		h.println("Pago Final: " + e.NetSalary.StringFixed(2))
		h.println(divider)
	}
}

func (h *Handler) printHeader() {
	h.println("********************************")
	h.println("SISTEMA DE NOMINAS - " + h.title)
	h.println("********************************")
}

func (h *Handler) printMenu() {
	h.println("")
	for i, d := range entity.Departments() {
		h.println(fmt.Sprintf("%d. Agregar empleado %s", i+1, d.Label()))
	}
	h.println("4. Ver reporte")
	h.println("5. Salir")
	h.println("")
}

// ── prompts ───────────────────────────────────────────────────────────────────

func (h *Handler) promptNonEmpty(prompt string) (string, error) {
	for {
		value, err := h.readLine(prompt)
		if err != nil {
			return "", err
		}
		switch {
		case value == "":
			h.println("Entrada vacía. Intente nuevamente.")
		case len(value) > maxNameLen:
			h.log.Debug().Int("len", len(value)).Msg("nombre demasiado largo")
			h.println(fmt.Sprintf("Entrada demasiado larga (máximo %d caracteres). Intente nuevamente.", maxNameLen))
		default:
			return value, nil
		}
	}
}

// promptDecimal repite hasta recibir un número en notación decimal simple.
// NaN/Inf, exponentes y entradas de más de maxAmountLen caracteres no son válidos.
func (h *Handler) promptDecimal(prompt string) (decimal.Decimal, error) {
	for {
		raw, err := h.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if value, ok := parseAmount(raw); ok {
			return value, nil
		}
		h.log.Debug().Int("len", len(raw)).Msg("sueldo no numérico")
		h.println("Entrada inválida. Ingrese un número válido.")
	}
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" || len(raw) > maxAmountLen || strings.ContainsAny(raw, "eE") {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// readLine muestra el prompt y devuelve la línea sin espacios alrededor.
// No hay tope de longitud al leer; cada prompt valida el largo que acepta.
// Una última línea sin salto final se entrega igual.
func (h *Handler) readLine(prompt string) (string, error) {
	h.print(prompt)
	if h.err != nil {
		return "", h.err
	}
	line, err := h.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("leer entrada: %w", err)
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimSpace(line), nil
}

// endOfSession traduce el fin de la entrada en un cierre normal.
func (h *Handler) endOfSession(err error) error {
	if errors.Is(err, errEndOfInput) {
		h.println("")
		h.log.Debug().Msg("entrada agotada, cerrando sesión")
		return h.err
	}
	return err
}

// ── salida ────────────────────────────────────────────────────────────────────

func (h *Handler) print(s string) {
	if h.err != nil {
		return
	}
	if _, err := io.WriteString(h.out, s); err != nil {
		h.err = fmt.Errorf("escribir salida: %w", err)
	}
}

func (h *Handler) println(s string) { h.print(s + "\n") }
