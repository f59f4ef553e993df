package content

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-cards/internal/config"
)

// DecodeCardFields reads the first vCard of r and returns the fields it
// sets, keyed like display overrides (config.EnvCard*). Fields absent from
// the vCard are absent from the map, so the result can be layered over
// content resolved in any language.
// Name strategy: FN (Formatted) > N (Structured).
func DecodeCardFields(r io.Reader) (map[string]string, error) {
	card, err := vcard.NewDecoder(r).Decode()
	if errors.Is(err, io.EOF) {
		return nil, errors.New(config.ErrVCardEmpty)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}

	fields := make(map[string]string)
	if fn := card.PreferredValue(vcard.FieldFormattedName); fn != "" {
		fields[config.EnvCardName] = fn
	} else if n := card.Name(); n != nil {
		if full := strings.TrimSpace(n.GivenName + " " + n.FamilyName); full != "" {
			fields[config.EnvCardName] = full
		}
	}

	pick := func(key, field string) {
		if v := card.PreferredValue(field); v != "" {
			fields[key] = v
		}
	}
	pick(config.EnvCardJobTitle, vcard.FieldTitle)
	pick(config.EnvCardPhone, vcard.FieldTelephone)
	pick(config.EnvCardEmail, vcard.FieldEmail)
	pick(config.EnvCardLinkedIn, vcard.FieldURL)

	slog.Info(config.MsgVCardLoaded,
		config.LogKeyComponent, config.CompContent,
		config.LogKeyName, fields[config.EnvCardName],
		config.LogKeyCount, len(fields))

	return fields, nil
}

// DecodeBusinessCard reads the first vCard of r and overlays its fields on
// base. Fields absent from the vCard keep the base value.
func DecodeBusinessCard(r io.Reader, base BusinessCard) (BusinessCard, error) {
	fields, err := DecodeCardFields(r)
	if err != nil {
		return base, err
	}
	return base.WithOverrides(fields, nil), nil
}

// EncodeBusinessCard writes c to w as a vCard 4.0.
func EncodeBusinessCard(w io.Writer, c BusinessCard) error {
	card := make(vcard.Card)

	card.SetValue(vcard.FieldFormattedName, c.Name)
	given, family := splitName(c.Name)
	card.SetName(&vcard.Name{GivenName: given, FamilyName: family})

	set := func(field, value string) {
		if value != "" {
			card.SetValue(field, value)
		}
	}
	set(vcard.FieldTitle, c.JobTitle)
	set(vcard.FieldTelephone, c.Phone)
	set(vcard.FieldEmail, c.Email)
	set(vcard.FieldURL, c.LinkedIn)

	vcard.ToV4(card)

	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return nil
}

// splitName splits "Given Family Name" on the first space.
func splitName(full string) (given, family string) {
	full = strings.TrimSpace(full)
	if i := strings.IndexByte(full, ' '); i >= 0 {
		return full[:i], strings.TrimSpace(full[i+1:])
	}
	return full, ""
}
