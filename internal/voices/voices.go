package voices

import "os"

// Voice — голос ElevenLabs, доступный пользователям бота.
type Voice struct {
	Key         string `json:"key"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry — фиксированный набор голосов. Заполняется при старте,
// дальше только чтение.
type Registry struct {
	list       []Voice
	byKey      map[string]Voice
	defaultKey string
}

// Все голоса используют мультиязычную модель, русский поддерживается.
var builtin = []Voice{
	{Key: "bella", ID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella", Description: "Мягкий, спокойный, умиротворяющий"},
	{Key: "rachel", ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Description: "Профессиональный, нейтральный, четкий"},
	{Key: "domi", ID: "AZnzlk1XvdvUeBnXmlld", Name: "Domi", Description: "Энергичный, молодой, динамичный"},
	{Key: "elli", ID: "MF3mGyEYCl7XYWbV9V6O", Name: "Elli", Description: "Дружелюбный, теплый, приветливый"},
	{Key: "dorothy", ID: "ThT5KcBeYPX3keUQqHPh", Name: "Dorothy", Description: "Зрелый, уверенный, авторитетный"},
	{Key: "charlotte", ID: "XB0fDUnXU5powFXDhCwa", Name: "Charlotte", Description: "Элегантный, утонченный"},
	{Key: "alice", ID: "Xb7hH8MSUJpSbSDYk0k2", Name: "Alice", Description: "Нежный, мягкий, деликатный"},
}

// NewRegistry собирает реестр. ELEVENLABS_VOICE_ID в env может
// переопределить дефолтный голос (если такой id есть в реестре).
func NewRegistry() *Registry {
	r := &Registry{
		list:       builtin,
		byKey:      make(map[string]Voice, len(builtin)),
		defaultKey: "bella",
	}
	for _, v := range builtin {
		r.byKey[v.Key] = v
	}

	if id := os.Getenv("ELEVENLABS_VOICE_ID"); id != "" {
		if v, ok := r.ByID(id); ok {
			r.defaultKey = v.Key
		}
	}

	return r
}

func (r *Registry) Get(key string) (Voice, bool) {
	v, ok := r.byKey[key]
	return v, ok
}

func (r *Registry) ByID(id string) (Voice, bool) {
	for _, v := range r.list {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

func (r *Registry) Default() Voice {
	return r.byKey[r.defaultKey]
}

// All возвращает голоса в порядке объявления (для меню).
func (r *Registry) All() []Voice {
	out := make([]Voice, len(r.list))
	copy(out, r.list)
	return out
}

func (r *Registry) Len() int {
	return len(r.list)
}
