package parking

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TicketActivo     = "Activo"
	TicketFinalizado = "Finalizado"
)

const (
	EspacioLibre     = "Libre"
	EspacioOcupado   = "Ocupado"
	EspacioReservado = "Reservado"
)

// Cliente mirrors a registered user on the parking side of the schema.
type Cliente struct {
	IDCliente uint   `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	Nombre    string `gorm:"not null" json:"nombre"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Cliente) TableName() string { return "clientes" }

type Espacio struct {
	IDEspacio uint   `gorm:"column:id_espacio;primaryKey" json:"id_espacio"`
	Numero    string `gorm:"not null;uniqueIndex" json:"numero"`
	Estado    string `gorm:"not null;default:Libre" json:"estado"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Espacio) TableName() string { return "espacios" }

// Tarifa is read-only reference data for this service; tickets arrive with
// their total already computed against it.
type Tarifa struct {
	IDTarifa     uint            `gorm:"column:id_tarifa;primaryKey" json:"id_tarifa"`
	Descripcion  string          `gorm:"not null" json:"descripcion"`
	MontoPorHora decimal.Decimal `gorm:"column:monto_por_hora;type:decimal(10,2);not null" json:"monto_por_hora"`
	Activo       bool            `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tarifa) TableName() string { return "tarifas" }

// Ticket is a parking session. MontoTotal and HorasEstadia are owned by the
// ticket/space subsystem; this service only reads them.
type Ticket struct {
	IDTicket     uint      `gorm:"column:id_ticket;primaryKey" json:"id_ticket"`
	IDCliente    uint      `gorm:"column:id_cliente;not null" json:"id_cliente"`
	IDEspacio    uint      `gorm:"column:id_espacio;not null" json:"id_espacio"`
	IDTarifa     uint      `gorm:"column:id_tarifa;not null" json:"id_tarifa"`
	HoraIngreso  time.Time `gorm:"column:hora_ingreso;not null" json:"hora_ingreso"`
	HorasEstadia *string   `gorm:"column:horas_estadia;type:decimal(10,2)" json:"horas_estadia"`
	MontoTotal   *string   `gorm:"column:monto_total;type:decimal(10,2)" json:"monto_total"`
	Estado       string    `gorm:"not null;default:Activo" json:"estado"`

	Cliente *Cliente `gorm:"foreignKey:IDCliente;references:IDCliente" json:"cliente,omitempty"`
	Espacio *Espacio `gorm:"foreignKey:IDEspacio;references:IDEspacio" json:"espacio,omitempty"`
	Tarifa  *Tarifa  `gorm:"foreignKey:IDTarifa;references:IDTarifa" json:"tarifa,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Ticket) TableName() string { return "tickets" }
