package entity

// PCRStage представляет стадию ПЦР с её правильной температурой
type PCRStage struct {
	Name string `json:"name"`
	Temp int    `json:"-"` // Скрыто от клиента
}

// Границы допустимого температурного ввода (°C)
const (
	PCRTempMin = 30
	PCRTempMax = 100
)

// PCRStages - иммутабельный каталог стадий ПЦР
var PCRStages = []PCRStage{
	{Name: "Denaturation", Temp: 95},
	{Name: "Annealing", Temp: 55},
	{Name: "Extension", Temp: 72},
}

// PCRStageByName возвращает стадию по имени
func PCRStageByName(name string) (PCRStage, bool) {
	for _, s := range PCRStages {
		if s.Name == name {
			return s, true
		}
	}
	return PCRStage{}, false
}
