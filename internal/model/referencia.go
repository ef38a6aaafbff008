package model

// Tecnico is an entry of the field-technician directory.
type Tecnico struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// CatalogoReferencia is the read-only reference data the console needs:
// technician directory, causal codes, equipment types, technologies and
// warehouse names. It is supplied at initialization and never mutated.
type CatalogoReferencia struct {
	Tecnicos    []Tecnico
	Causales    []string
	TiposEquipo []string
	Tecnologias []string
	Almacenes   []string
}

// BuscarTecnico returns the directory entry for an id.
func (c *CatalogoReferencia) BuscarTecnico(id string) (Tecnico, bool) {
	for _, t := range c.Tecnicos {
		if t.ID == id {
			return t, true
		}
	}
	return Tecnico{}, false
}

// EsCausalValida reports whether the causal belongs to the fixed list.
func (c *CatalogoReferencia) EsCausalValida(causal string) bool {
	for _, cc := range c.Causales {
		if cc == causal {
			return true
		}
	}
	return false
}

// TipoEquipoPorDefecto is the fallback equipment type used when an RMA is
// registered for a serial the registry never saw and the caller supplies
// none. Any valid default is acceptable; the first list entry keeps it
// deterministic.
func (c *CatalogoReferencia) TipoEquipoPorDefecto() string {
	if len(c.TiposEquipo) == 0 {
		return ""
	}
	return c.TiposEquipo[0]
}

// TecnologiaPorDefecto mirrors TipoEquipoPorDefecto for the technology list.
func (c *CatalogoReferencia) TecnologiaPorDefecto() string {
	if len(c.Tecnologias) == 0 {
		return ""
	}
	return c.Tecnologias[0]
}

// AlmacenPorDefecto is the warehouse used when an intake omits the location.
func (c *CatalogoReferencia) AlmacenPorDefecto() string {
	if len(c.Almacenes) == 0 {
		return ""
	}
	return c.Almacenes[0]
}
