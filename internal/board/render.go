package board

import (
	"fmt"

	"activity-board/internal/model"
)

// Тексты разметки доски.
const (
	DefaultOptionLabel = "-- Select an activity --"
	NoParticipantsText = "No participants yet, be the first!"
	LoadingText        = "Loading activities..."
	UnavailableText    = "Unable to load activities."
)

// Option описывает пункт выпадающего списка активностей.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Participant описывает строку списка участников с кнопкой отписки.
type Participant struct {
	Email       string `json:"email"`
	RemoveTitle string `json:"remove_title"`
}

// Card описывает карточку одной активности.
type Card struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Schedule     string        `json:"schedule"`
	Count        string        `json:"count"`
	Participants []Participant `json:"participants"`
}

// Empty сообщает, что вместо списка участников нужно показать заглушку.
func (c Card) Empty() bool {
	return len(c.Participants) == 0
}

// BoardView содержит полностью построенную доску: список выбора и карточки.
type BoardView struct {
	Options []Option `json:"options"`
	Cards   []Card   `json:"cards"`
}

// RenderActivities строит доску заново из набора активностей в его порядке.
func RenderActivities(acts model.Activities) BoardView {
	view := BoardView{
		Options: make([]Option, 0, len(acts)+1),
		Cards:   make([]Card, 0, len(acts)),
	}
	view.Options = append(view.Options, Option{Value: "", Label: DefaultOptionLabel})

	for _, a := range acts {
		view.Options = append(view.Options, Option{Value: a.Name, Label: a.Name})

		card := Card{
			Name:         a.Name,
			Description:  a.Description,
			Schedule:     a.Schedule,
			Count:        fmt.Sprintf("%d / %d", len(a.Participants), a.MaxParticipants),
			Participants: make([]Participant, 0, len(a.Participants)),
		}
		for _, email := range a.Participants {
			card.Participants = append(card.Participants, Participant{
				Email:       email,
				RemoveTitle: "Unregister " + email,
			})
		}
		view.Cards = append(view.Cards, card)
	}

	return view
}
