package location

import (
	"errors"
	"fmt"

	"shipping/internal/entities"
)

var (
	ErrUnknownDepartment   = errors.New("unknown department")
	ErrUnknownMunicipality = errors.New("municipality does not belong to department")
)

const DefaultDepartment = "San Salvador"

// Первым в каждом департаменте идет муниципалитет, который форма подставляет по умолчанию.
var departments = []entities.Department{
	{Name: "Ahuachapán", Municipalities: []string{"Ahuachapán", "Apaneca", "Atiquizaya", "Concepción de Ataco", "El Refugio", "Guaymango", "Jujutla", "San Francisco Menéndez", "San Lorenzo", "San Pedro Puxtla", "Tacuba", "Turín"}},
	{Name: "Cabañas", Municipalities: []string{"Sensuntepeque", "Cinquera", "Dolores", "Guacotecti", "Ilobasco", "Jutiapa", "San Isidro", "Tejutepeque", "Victoria"}},
	{Name: "Chalatenango", Municipalities: []string{"Chalatenango", "Agua Caliente", "Arcatao", "Citalá", "Dulce Nombre de María", "La Palma", "Nueva Concepción", "San Ignacio", "Tejutla"}},
	{Name: "Cuscatlán", Municipalities: []string{"Cojutepeque", "Candelaria", "El Carmen", "San Bartolomé Perulapía", "San Pedro Perulapán", "San Rafael Cedros", "Santa Cruz Michapa", "Suchitoto", "Tenancingo"}},
	{Name: "La Libertad", Municipalities: []string{"Santa Tecla", "Antiguo Cuscatlán", "Ciudad Arce", "Colón", "La Libertad", "Nuevo Cuscatlán", "Quezaltepeque", "San Juan Opico", "Zaragoza"}},
	{Name: "La Paz", Municipalities: []string{"Zacatecoluca", "El Rosario", "Olocuilta", "San Juan Nonualco", "San Luis Talpa", "San Pedro Masahuat", "San Pedro Nonualco", "Santiago Nonualco"}},
	{Name: "La Unión", Municipalities: []string{"La Unión", "Anamorós", "Conchagua", "El Carmen", "Intipucá", "Pasaquina", "San Alejo", "Santa Rosa de Lima"}},
	{Name: "Morazán", Municipalities: []string{"San Francisco Gotera", "Cacaopera", "Corinto", "Guatajiagua", "Jocoro", "Perquín", "Sociedad", "Sensembra"}},
	{Name: "San Miguel", Municipalities: []string{"San Miguel", "Chinameca", "Chirilagua", "Ciudad Barrios", "El Tránsito", "Moncagua", "Nueva Guadalupe", "Quelepa", "San Rafael Oriente"}},
	{Name: "San Salvador", Municipalities: []string{"San Salvador", "Aguilares", "Apopa", "Ayutuxtepeque", "Cuscatancingo", "Delgado", "El Paisnal", "Guazapa", "Ilopango", "Mejicanos", "Nejapa", "Panchimalco", "Rosario de Mora", "San Marcos", "San Martín", "Santiago Texacuangos", "Santo Tomás", "Soyapango", "Tonacatepeque"}},
	{Name: "San Vicente", Municipalities: []string{"San Vicente", "Apastepeque", "Guadalupe", "San Cayetano Istepeque", "San Sebastián", "Santa Clara", "Tecoluca", "Verapaz"}},
	{Name: "Santa Ana", Municipalities: []string{"Santa Ana", "Candelaria de la Frontera", "Chalchuapa", "Coatepeque", "El Congo", "Metapán", "San Sebastián Salitrillo", "Texistepeque"}},
	{Name: "Sonsonate", Municipalities: []string{"Sonsonate", "Acajutla", "Armenia", "Izalco", "Juayúa", "Nahuizalco", "Nahulingo", "Salcoatitán", "Sonzacate"}},
	{Name: "Usulután", Municipalities: []string{"Usulután", "Berlín", "Jiquilisco", "Jucuapa", "Puerto El Triunfo", "San Agustín", "Santa Elena", "Santiago de María"}},
}

func Departments() []entities.Department {
	res := make([]entities.Department, len(departments))
	for i, d := range departments {
		res[i] = entities.Department{
			Name:           d.Name,
			Municipalities: append([]string(nil), d.Municipalities...),
		}
	}
	return res
}

func Municipalities(department string) ([]string, error) {
	d, err := find(department)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), d.Municipalities...), nil
}

// DefaultMunicipality - первый муниципалитет департамента.
func DefaultMunicipality(department string) (string, error) {
	d, err := find(department)
	if err != nil {
		return "", err
	}
	return d.Municipalities[0], nil
}

func Contains(department, municipality string) bool {
	d, err := find(department)
	if err != nil {
		return false
	}
	for _, m := range d.Municipalities {
		if m == municipality {
			return true
		}
	}
	return false
}

// Validate проверяет, что муниципалитет относится к департаменту.
func Validate(department, municipality string) error {
	if _, err := find(department); err != nil {
		return err
	}
	if !Contains(department, municipality) {
		return fmt.Errorf("%w: %q in %q", ErrUnknownMunicipality, municipality, department)
	}
	return nil
}

func find(department string) (entities.Department, error) {
	for _, d := range departments {
		if d.Name == department {
			return d, nil
		}
	}
	return entities.Department{}, fmt.Errorf("%w: %q", ErrUnknownDepartment, department)
}
