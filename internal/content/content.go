package content

import (
	"github.com/tartampluch/go-cards/internal/config"
)

// Resolver looks up display strings from the string tables.
// Missing keys resolve to the key itself.
type Resolver interface {
	Message(key string) string
	Template(key string, data map[string]interface{}) string
}

// Image is an opaque handle to an image resource, resolved by the host.
type Image struct {
	Name        string
	Description string
}

// BusinessCard is the display content of the business card screen.
type BusinessCard struct {
	Portrait  Image
	Name      string
	JobTitle  string
	Phone     string
	Email     string
	LinkedIn  string
	LinkLabel string
}

// TaskCompleted is the display content of the task completed screen.
type TaskCompleted struct {
	Image      Image
	Message    string
	Compliment string
}

// NewBusinessCard resolves the business card content from the string tables.
func NewBusinessCard(r Resolver) BusinessCard {
	name := r.Message(config.TKeyName)
	return BusinessCard{
		Portrait: Image{
			Name:        config.ImagePortrait,
			Description: portraitDescription(r, name),
		},
		Name:      name,
		JobTitle:  r.Message(config.TKeyJobTitle),
		Phone:     r.Message(config.TKeyPhone),
		Email:     r.Message(config.TKeyEmail),
		LinkedIn:  r.Message(config.TKeyLinkedIn),
		LinkLabel: r.Message(config.TKeyLinkLabel),
	}
}

// NewTaskCompleted resolves the task screen content from the string tables.
func NewTaskCompleted(r Resolver) TaskCompleted {
	return TaskCompleted{
		Image: Image{
			Name:        config.ImageTaskCompleted,
			Description: r.Message(config.TKeyTaskImageDesc),
		},
		Message:    r.Message(config.TKeyTaskMessage),
		Compliment: r.Message(config.TKeyTaskCompliment),
	}
}

func portraitDescription(r Resolver, name string) string {
	return r.Template(config.TKeyPortraitDesc, map[string]interface{}{"Name": name})
}

// DescribePortrait returns a copy of c whose portrait description names c.Name.
func (c BusinessCard) DescribePortrait(r Resolver) BusinessCard {
	c.Portrait.Description = portraitDescription(r, c.Name)
	return c
}

// WithOverrides returns a copy of c with the values present in env applied.
// When the name changes, the portrait description follows it.
func (c BusinessCard) WithOverrides(env map[string]string, r Resolver) BusinessCard {
	out := c
	set := func(dst *string, key string) {
		if v, ok := env[key]; ok && v != "" {
			*dst = v
		}
	}
	set(&out.Name, config.EnvCardName)
	set(&out.JobTitle, config.EnvCardJobTitle)
	set(&out.Phone, config.EnvCardPhone)
	set(&out.Email, config.EnvCardEmail)
	set(&out.LinkedIn, config.EnvCardLinkedIn)
	set(&out.LinkLabel, config.EnvCardLinkLabel)

	if out.Name != c.Name && r != nil {
		return out.DescribePortrait(r)
	}
	return out
}

// WithOverrides returns a copy of c with the values present in env applied.
func (c TaskCompleted) WithOverrides(env map[string]string) TaskCompleted {
	out := c
	if v := env[config.EnvTaskMessage]; v != "" {
		out.Message = v
	}
	if v := env[config.EnvTaskCompliment]; v != "" {
		out.Compliment = v
	}
	return out
}
