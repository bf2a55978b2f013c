// Package jobs holds the board's listings. The catalog is fixed: the initial
// page and one "load more" batch, with no fetching.
package jobs

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Mode is where the work happens.
type Mode string

const (
	Remote Mode = "remote"
	Hybrid Mode = "hybrid"
	Onsite Mode = "onsite"
)

// Label is the badge text for m.
func (m Mode) Label() string {
	switch m {
	case Remote:
		return "Remote"
	case Hybrid:
		return "Hybrid"
	}
	return "On-site"
}

// Contract is the hiring regime.
type Contract string

const (
	CLT Contract = "CLT"
	PJ  Contract = "PJ"
)

// Job is one listing card.
type Job struct {
	Title       string
	Company     string
	Location    string
	Mode        Mode
	Description string
	Skills      []string
	SalaryMin   int
	SalaryMax   int
	Contract    Contract
	Posted      time.Time
	Applied     bool
}

// Salary renders the range in reais, e.g. "R$ 6.500 - R$ 8.000".
func (j Job) Salary() string {
	return fmt.Sprintf("R$ %s - R$ %s", brl(j.SalaryMin), brl(j.SalaryMax))
}

func brl(n int) string {
	return humanize.FormatInteger("#.###,", n)
}

// Age renders how long ago the job was posted relative to now.
func (j Job) Age(now time.Time) string {
	if j.Posted.IsZero() {
		return ""
	}
	return "posted " + humanize.RelTime(j.Posted, now, "ago", "from now")
}

// Seed returns the listings shown on first load.
func Seed(now time.Time) []Job {
	return []Job{
		{
			Title:       "Desenvolvedor Back-end Go",
			Company:     "Nimbus Pagamentos",
			Location:    "São Paulo, SP",
			Mode:        Remote,
			Description: "Build and operate payment APIs in Go with PostgreSQL and Kafka.",
			Skills:      []string{"Go", "PostgreSQL", "Kafka", "Docker"},
			SalaryMin:   9000,
			SalaryMax:   12000,
			Contract:    PJ,
			Posted:      now.Add(-26 * time.Hour),
		},
		{
			Title:       "Desenvolvedor Front-end React",
			Company:     "Loja Viva",
			Location:    "Curitiba, PR",
			Mode:        Hybrid,
			Description: "Own the storefront UI in React and TypeScript.",
			Skills:      []string{"React", "TypeScript", "CSS", "Testing Library"},
			SalaryMin:   6000,
			SalaryMax:   8500,
			Contract:    CLT,
			Posted:      now.Add(-3 * 24 * time.Hour),
		},
		{
			Title:       "Analista de Suporte Técnico",
			Company:     "Conecta Telecom",
			Location:    "Recife, PE",
			Mode:        Onsite,
			Description: "First-line support for enterprise customers.",
			Skills:      []string{"Linux", "Redes", "Atendimento"},
			SalaryMin:   3200,
			SalaryMax:   4100,
			Contract:    CLT,
			Posted:      now.Add(-5 * time.Hour),
		},
	}
}

// BatchSize is how many listings one "load more" adds.
const BatchSize = 3

// Batch returns the listings added by "load more".
func Batch(now time.Time) []Job {
	return []Job{
		{
			Title:       "Analista de Dados Pleno",
			Company:     "Data Insights",
			Location:    "Belo Horizonte, MG",
			Mode:        Remote,
			Description: "Vaga para analista de dados com experiência em Python e SQL.",
			Skills:      []string{"Python", "SQL", "Pandas", "Visualização de Dados"},
			SalaryMin:   6500,
			SalaryMax:   8000,
			Contract:    PJ,
			Posted:      now,
		},
		{
			Title:       "Designer UX/UI",
			Company:     "Creative Solutions",
			Location:    "Porto Alegre, RS",
			Mode:        Hybrid,
			Description: "Procuramos designer com portfólio e experiência em Figma.",
			Skills:      []string{"Figma", "UI Design", "UX Research", "Prototipação"},
			SalaryMin:   5200,
			SalaryMax:   6800,
			Contract:    CLT,
			Posted:      now,
		},
		{
			Title:       "Engenheiro de Software Sênior",
			Company:     "Tech Innovations",
			Location:    "São Paulo, SP",
			Mode:        Onsite,
			Description: "Vaga para sênior com experiência em arquitetura de sistemas.",
			Skills:      []string{"Java", "Spring Boot", "Microserviços", "AWS"},
			SalaryMin:   12000,
			SalaryMax:   15000,
			Contract:    CLT,
			Posted:      now,
		},
	}
}
