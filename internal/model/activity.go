// Package model содержит доменные структуры доски активностей.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Activity описывает активность: расписание, вместимость и список записавшихся.
// Name является ключом и в JSON приходит ключом объекта, а не полем.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Activities хранит упорядоченный набор активностей в порядке ключей исходного JSON-объекта.
type Activities []Activity

var errNotObject = errors.New("activities payload must be a JSON object")

// UnmarshalJSON разбирает объект вида {"name": Activity} с сохранением порядка ключей.
func (a *Activities) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}

	out := make(Activities, 0)
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read activity name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return errNotObject
		}

		var act Activity
		if err := dec.Decode(&act); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		act.Name = name

		// повторный ключ перекрывает предыдущий, как в обычном JSON-объекте
		if i, dup := seen[name]; dup {
			out[i] = act
			continue
		}
		seen[name] = len(out)
		out = append(out, act)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read payload end: %w", err)
	}

	*a = out
	return nil
}
