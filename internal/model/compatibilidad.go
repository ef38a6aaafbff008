package model

// EntradaCompatibilidad maps one access-network technology to the services
// that can be sold over it.
type EntradaCompatibilidad struct {
	Tecnologia string   `json:"tecnologia"`
	Servicios  []string `json:"servicios"`
}

// MatrizCompatibilidad is the technology-to-service compatibility matrix.
// Entries keep their seeded order for stable display.
type MatrizCompatibilidad struct {
	Entradas []EntradaCompatibilidad
}

// ServiciosPara returns the services compatible with a technology.
func (m MatrizCompatibilidad) ServiciosPara(tecnologia string) ([]string, bool) {
	for _, e := range m.Entradas {
		if e.Tecnologia == tecnologia {
			return e.Servicios, true
		}
	}
	return nil, false
}
