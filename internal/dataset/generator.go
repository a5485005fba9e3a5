// Package dataset sintetiza o conjunto de dados operacional usado pelas métricas de analytics
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

//go:generate mockgen -source=generator.go -destination=mocks/job_tracker.go -package=mocks

const (
	SeedJobName = "analytics-seed"

	DefaultDays           = 180
	DefaultSeed           = 42
	DefaultCellResolution = 0.02

	day = 24 * time.Hour
)

var (
	categoriesMunicipio = []string{"iluminacion", "limpieza", "calles", "seguridad", "espacio-publico"}
	categoriesPyme      = []string{"soporte", "ventas", "logistica", "posventa"}
	canales             = []string{"whatsapp", "web", "email", "presencial"}
	estados             = []string{domain.EstadoAbierto, domain.EstadoEnProceso, domain.EstadoResuelto, domain.EstadoBacklog}
	severidades         = []string{"baja", "media", "alta"}
	zonas               = []string{"zona-norte", "zona-sur", "zona-centro", "zona-oeste"}
	etiquetas           = []string{"prioritario", "seguimiento", "automatizado", "manual"}
	plantillas          = []string{"bienvenida", "seguimiento", "recordatorio", "promocion"}
	orderEstados        = []string{"nuevo", "pagado", "cancelado", "en_proceso"}
	catalog             = buildCatalog()
)

// JobTracker recebe a duração das rotinas internas
type JobTracker interface {
	TrackJobRun(name string, duration time.Duration)
}

type Options struct {
	Tenants        []domain.Tenant
	Days           int
	Seed           int64
	Now            time.Time // zero usa o início do dia corrente em UTC
	CellResolution float64
}

func (o Options) withDefaults() Options {
	if len(o.Tenants) == 0 {
		o.Tenants = domain.DefaultTenants()
	}
	if o.Days <= 0 {
		o.Days = DefaultDays
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Now.IsZero() {
		o.Now = time.Now().UTC().Truncate(day)
	}
	o.Now = o.Now.UTC()
	if o.CellResolution <= 0 {
		o.CellResolution = DefaultCellResolution
	}
	return o
}

type Generator struct {
	tracker JobTracker
}

func NewGenerator(tracker JobTracker) *Generator {
	return &Generator{tracker: tracker}
}

type ids struct {
	ticket, interaction, order, survey int
}

// Generate monta o grafo completo de entidades. Para os mesmos tenants, dias, semente e
// instante de referência o resultado é sempre idêntico.
func (g *Generator) Generate(opts Options) *Dataset {
	started := time.Now()
	opts = opts.withDefaults()
	rand := NewRandom(opts.Seed)

	ds := &Dataset{
		GeneratedAt: opts.Now,
		Tenants:     opts.Tenants,
	}

	agentsByTenant := make(map[string][]domain.Agent, len(opts.Tenants))
	for tenantIdx, tenant := range opts.Tenants {
		agents := buildAgents(tenant, tenantIdx)
		agentsByTenant[tenant.ID] = agents
		ds.Agents = append(ds.Agents, agents...)
	}

	windowStart := opts.Now.Add(-time.Duration(opts.Days) * day)
	cells := newCellAccumulator()
	var seq ids

	for _, tenant := range opts.Tenants {
		base := 120.0
		if tenant.Type == domain.TenantMunicipio {
			base = 180.0
		}

		for d := 0; d < opts.Days; d++ {
			dayStart := windowStart.Add(time.Duration(d) * day)
			count := int(math.Floor(base * (0.6 + rand.Float64()*0.8)))

			for i := 0; i < count; i++ {
				seq.ticket++
				ticket := g.buildTicket(rand, tenant, agentsByTenant[tenant.ID], dayStart, seq.ticket, opts.CellResolution)
				ds.Tickets = append(ds.Tickets, ticket)
				cells.add(ticket)

				ds.Interactions = append(ds.Interactions, buildInteractions(rand, ticket, &seq)...)

				if tenant.Type == domain.TenantPyme && rand.Float64() > 0.35 {
					seq.order++
					ds.Orders = append(ds.Orders, buildOrder(rand, ticket, seq.order))
				}

				if rand.Float64() > 0.6 {
					seq.survey++
					ds.Surveys = append(ds.Surveys, buildSurvey(rand, ticket, seq.survey))
				}
			}
		}
	}

	ds.GeoCells = cells.values()
	ds.buildIndexes()

	duration := time.Since(started)
	if g.tracker != nil {
		g.tracker.TrackJobRun(SeedJobName, duration)
	}

	logrus.WithFields(logrus.Fields{
		"tenants":      len(ds.Tenants),
		"tickets":      len(ds.Tickets),
		"interactions": len(ds.Interactions),
		"orders":       len(ds.Orders),
		"surveys":      len(ds.Surveys),
		"duration_ms":  duration.Milliseconds(),
	}).Info("Dataset de analytics gerado")

	return ds
}

func buildAgents(tenant domain.Tenant, tenantIdx int) []domain.Agent {
	count := 10
	if tenant.Type == domain.TenantMunicipio {
		count = 15
	}

	agents := make([]domain.Agent, 0, count)
	for a := 0; a < count; a++ {
		rol := "visor"
		switch {
		case a == 0:
			rol = "admin"
		case a < 5:
			rol = "operador"
		}

		agents = append(agents, domain.Agent{
			ID:       fmt.Sprintf("%s-agent-%d", tenant.ID, a+1),
			TenantID: tenant.ID,
			Nombre:   fmt.Sprintf("Agente %d-%d", tenantIdx+1, a+1),
			Rol:      rol,
			Equipo:   []string{"equipo-a", "equipo-b", "equipo-c"}[a%3],
		})
	}
	return agents
}

// buildTicket consome a sequência sempre na mesma ordem de campos; alterar a ordem muda o dataset inteiro
func (g *Generator) buildTicket(rand *Random, tenant domain.Tenant, agents []domain.Agent, dayStart time.Time, id int, resolution float64) domain.Ticket {
	createdAt := dayStart.Add(fraction(rand.Float64(), day))

	vocabulary, latBase, lonBase := categoriesPyme, -34.45, -58.55
	if tenant.Type == domain.TenantMunicipio {
		vocabulary, latBase, lonBase = categoriesMunicipio, -34.6, -58.45
	}

	categoria := Pick(rand, vocabulary)
	estado := Pick(rand, estados)
	canal := Pick(rand, canales)
	agent := Pick(rand, agents)
	lat := utils.Round(latBase+(rand.Float64()-0.5)*0.3, 6)
	lon := utils.Round(lonBase+(rand.Float64()-0.5)*0.3, 6)
	barrio := Pick(rand, zonas)
	zona := Pick(rand, zonas)

	origen := domain.OrigenHumano
	if rand.Float64() > 0.4 {
		origen = domain.OrigenBot
	}

	firstResponse := math.Floor(rand.Float64() * 8 * 60)
	resolutionMinutes := math.Floor(firstResponse + rand.Float64()*48*60)

	ticket := domain.Ticket{
		ID:                fmt.Sprintf("T-%s-%d", tenant.ID, id),
		TenantID:          tenant.ID,
		Canal:             canal,
		Categoria:         categoria,
		Estado:            estado,
		CreadoEn:          createdAt,
		PrimerRespuestaEn: createdAt.Add(time.Duration(firstResponse) * time.Minute),
		Ubicacion: domain.Location{
			Lat:    lat,
			Lon:    lon,
			Barrio: barrio,
			Zona:   zona,
			CellID: BuildGeoCell(lat, lon, resolution),
		},
		Origen:    origen,
		AsignadoA: agent.ID,
	}

	if estado == domain.EstadoResuelto {
		closedAt := createdAt.Add(time.Duration(resolutionMinutes) * time.Minute)
		ticket.CerradoEn = &closedAt
	}

	ticket.Subcategoria = fmt.Sprintf("%s-sub-%d", categoria, int(math.Ceil(rand.Float64()*3)))
	ticket.Severidad = Pick(rand, severidades)
	ticket.AdjuntosCount = int(rand.Float64() * 4)

	ticket.Etiquetas = make([]string, 0, len(etiquetas))
	for _, tag := range etiquetas {
		if rand.Float64() > 0.6 {
			ticket.Etiquetas = append(ticket.Etiquetas, tag)
		}
	}

	if tenant.Type == domain.TenantPyme {
		ticket.PymeID = fmt.Sprintf("%s-cliente-%d", tenant.ID, int(math.Ceil(rand.Float64()*200)))
	}

	ticket.SLABreach = rand.Float64() > 0.82
	ticket.Reapertura = rand.Float64() > 0.88
	ticket.Automatizado = origen == domain.OrigenBot && rand.Float64() > 0.3

	return ticket
}

func buildInteractions(rand *Random, ticket domain.Ticket, seq *ids) []domain.Interaction {
	count := 2 + int(rand.Float64()*4)
	interactions := make([]domain.Interaction, 0, count)

	for j := 0; j < count; j++ {
		timestamp := ticket.CreadoEn.
			Add(time.Duration(j) * 30 * time.Minute).
			Add(fraction(rand.Float64(), 10*time.Minute))

		tipo := domain.TipoMensaje
		if j > 0 && rand.Float64() > 0.7 {
			tipo = domain.TipoPlantilla
		}

		actor := domain.ActorUsuario
		if j > 0 {
			actor = domain.ActorBot
			if rand.Float64() > 0.5 {
				actor = domain.ActorAgente
			}
		}

		var plantilla string
		if tipo == domain.TipoPlantilla {
			plantilla = Pick(rand, plantillas)
		}

		seq.interaction++
		interactions = append(interactions, domain.Interaction{
			ID:        seq.interaction,
			TicketID:  ticket.ID,
			Tipo:      tipo,
			Canal:     ticket.Canal,
			Timestamp: timestamp,
			Actor:     actor,
			Plantilla: plantilla,
			TenantID:  ticket.TenantID,
		})
	}
	return interactions
}

func buildOrder(rand *Random, ticket domain.Ticket, id int) domain.Order {
	count := 1 + int(rand.Float64()*4)
	items := make([]domain.OrderItem, 0, count)

	var total float64
	for k := 0; k < count; k++ {
		item := domain.OrderItem{
			SKU: Pick(rand, catalog),
			Qty: 1 + int(rand.Float64()*5),
		}
		item.Precio = utils.Round(5000+rand.Float64()*45000, 2)
		total += float64(item.Qty) * item.Precio
		items = append(items, item)
	}

	return domain.Order{
		ID:       fmt.Sprintf("O-%s-%d", ticket.TenantID, id),
		TenantID: ticket.TenantID,
		Items:    items,
		Total:    utils.Round(total, 2),
		Estado:   Pick(rand, orderEstados),
		Canal:    ticket.Canal,
		CreadoEn: ticket.CreadoEn,
		Ubicacion: domain.Location{
			Lat:    ticket.Ubicacion.Lat,
			Lon:    ticket.Ubicacion.Lon,
			Barrio: ticket.Ubicacion.Barrio,
			Zona:   ticket.Ubicacion.Zona,
		},
		TicketID: ticket.ID,
	}
}

func buildSurvey(rand *Random, ticket domain.Ticket, id int) domain.Survey {
	survey := domain.Survey{
		ID:       fmt.Sprintf("S-%d", id),
		TenantID: ticket.TenantID,
		TicketID: ticket.ID,
		Tipo:     domain.SurveyNPS,
	}

	if rand.Float64() > 0.5 {
		survey.Tipo = domain.SurveyCSAT
	}

	if survey.Tipo == domain.SurveyCSAT {
		survey.Score = 1 + int(rand.Float64()*5)
	} else {
		survey.Score = int(rand.Float64()*11) - 1
	}

	if rand.Float64() > 0.7 {
		survey.Comentario = fmt.Sprintf("retro-%d", int(rand.Float64()*1000))
	}

	survey.Timestamp = ticket.CreadoEn.Add(fraction(rand.Float64(), 3*day))
	return survey
}

// BuildGeoCell quantiza a coordenada na grade da resolução informada
func BuildGeoCell(lat, lon, resolution float64) string {
	row := roundHalfUp(lat / resolution)
	col := roundHalfUp(lon / resolution)
	return fmt.Sprintf("cell-%s-%d-%d", strconv.FormatFloat(resolution, 'f', -1, 64), row, col)
}

// roundHalfUp arredonda .5 para cima também em valores negativos
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// fraction devolve r * d com precisão de milissegundos
func fraction(r float64, d time.Duration) time.Duration {
	return time.Duration(r * float64(d)).Truncate(time.Millisecond)
}

func buildCatalog() []string {
	skus := make([]string, 0, 40)
	for i := 1; i <= 30; i++ {
		skus = append(skus, fmt.Sprintf("producto-%d", i))
	}
	for i := 1; i <= 10; i++ {
		skus = append(skus, fmt.Sprintf("servicio-%d", i))
	}
	return skus
}

type cellAccumulator struct {
	index map[string]int
	cells []domain.GeoCell
}

func newCellAccumulator() *cellAccumulator {
	return &cellAccumulator{index: make(map[string]int)}
}

func (c *cellAccumulator) add(ticket domain.Ticket) {
	key := ticket.TenantID + "-" + ticket.Ubicacion.CellID
	idx, ok := c.index[key]
	if !ok {
		idx = len(c.cells)
		c.index[key] = idx
		c.cells = append(c.cells, domain.GeoCell{
			TenantID:   ticket.TenantID,
			CellID:     ticket.Ubicacion.CellID,
			Lat:        ticket.Ubicacion.Lat,
			Lon:        ticket.Ubicacion.Lon,
			Categories: make(map[string]int),
		})
	}
	c.cells[idx].Count++
	c.cells[idx].Categories[ticket.Categoria]++
}

func (c *cellAccumulator) values() []domain.GeoCell {
	return c.cells
}
