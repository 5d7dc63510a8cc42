package message

import (
	"encoding/json"
	"fmt"

	"github.com/strasdat/vviz/pkg/entity"
	"github.com/strasdat/vviz/pkg/spatial"
)

// envelope is the tagged wire form of a single message. The type tag and
// the field names of each payload are the compatibility surface between
// independently deployed control and presentation processes.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Wire tags, one per variant.
const (
	tagAddButton        = "addButton"
	tagAddToggle        = "addToggle"
	tagAddNumber        = "addNumber"
	tagAddRangedNumber  = "addRangedNumber"
	tagAddEnum          = "addEnum"
	tagAddPanel2D       = "addPanel2d"
	tagAddPanel3D       = "addPanel3d"
	tagPlaceEntity      = "placeEntity"
	tagUpdateEntityPose = "updateEntityPose"
	tagDeleteComponent  = "deleteComponent"

	tagButtonPressed = "buttonPressed"
	tagToggleChanged = "toggleChanged"
	tagRangedChanged = "rangedChanged"
	tagEnumChanged   = "enumChanged"
)

// entityEnvelope is the tagged wire form of an Entity3 variant.
type entityEnvelope struct {
	Type         string                `json:"type"`
	Mesh         *entity.Mesh3         `json:"mesh,omitempty"`
	LineSegments *entity.LineSegments3 `json:"lineSegments,omitempty"`
}

func encodeEntity(e entity.Entity3) (entityEnvelope, error) {
	switch v := e.(type) {
	case entity.Mesh3:
		return entityEnvelope{Type: "mesh", Mesh: &v}, nil
	case entity.LineSegments3:
		return entityEnvelope{Type: "lineSegments", LineSegments: &v}, nil
	default:
		return entityEnvelope{}, fmt.Errorf("unknown entity variant %T", e)
	}
}

func (env entityEnvelope) decode() (entity.Entity3, error) {
	switch env.Type {
	case "mesh":
		if env.Mesh == nil {
			return nil, fmt.Errorf("mesh entity without mesh payload")
		}
		return *env.Mesh, nil
	case "lineSegments":
		if env.LineSegments == nil {
			return nil, fmt.Errorf("lineSegments entity without payload")
		}
		return *env.LineSegments, nil
	default:
		return nil, fmt.Errorf("unknown entity tag %q", env.Type)
	}
}

// placeEntityJSON is the wire form of PlaceEntity.
type placeEntityJSON struct {
	Panel     string         `json:"panel"`
	Label     string         `json:"label"`
	ScenePose spatial.Pose   `json:"scenePose"`
	Entity    entityEnvelope `json:"entity"`
}

// MarshalJSON encodes the placed entity with a tagged entity payload.
func (m PlaceEntity) MarshalJSON() ([]byte, error) {
	env, err := encodeEntity(m.Entity.Entity)
	if err != nil {
		return nil, err
	}
	return json.Marshal(placeEntityJSON{
		Panel:     m.Panel,
		Label:     m.Entity.Label,
		ScenePose: m.Entity.ScenePose,
		Entity:    env,
	})
}

// UnmarshalJSON decodes the tagged entity payload.
func (m *PlaceEntity) UnmarshalJSON(data []byte) error {
	var raw placeEntityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e, err := raw.Entity.decode()
	if err != nil {
		return err
	}
	*m = PlaceEntity{
		Panel: raw.Panel,
		Entity: entity.Named3{
			Label:     raw.Label,
			Entity:    e,
			ScenePose: raw.ScenePose,
		},
	}
	return nil
}

func toGuiTag(m ToGui) (string, error) {
	switch m.(type) {
	case AddButton:
		return tagAddButton, nil
	case AddToggle:
		return tagAddToggle, nil
	case AddNumber:
		return tagAddNumber, nil
	case AddRangedNumber:
		return tagAddRangedNumber, nil
	case AddEnum:
		return tagAddEnum, nil
	case AddPanel2D:
		return tagAddPanel2D, nil
	case AddPanel3D:
		return tagAddPanel3D, nil
	case PlaceEntity:
		return tagPlaceEntity, nil
	case UpdateEntityPose:
		return tagUpdateEntityPose, nil
	case DeleteComponent:
		return tagDeleteComponent, nil
	default:
		return "", fmt.Errorf("unknown ToGui variant %T", m)
	}
}

func fromGuiTag(m FromGui) (string, error) {
	switch m.(type) {
	case ButtonPressed:
		return tagButtonPressed, nil
	case ToggleChanged:
		return tagToggleChanged, nil
	case RangedChanged:
		return tagRangedChanged, nil
	case EnumChanged:
		return tagEnumChanged, nil
	default:
		return "", fmt.Errorf("unknown FromGui variant %T", m)
	}
}

// EncodeToGuiBatch serializes a ToGui batch as a JSON array of tagged
// envelopes, in order.
func EncodeToGuiBatch(batch []ToGui) ([]byte, error) {
	envs := make([]envelope, 0, len(batch))
	for _, m := range batch {
		tag, err := toGuiTag(m)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", tag, err)
		}
		envs = append(envs, envelope{Type: tag, Data: data})
	}
	return json.Marshal(envs)
}

// DecodeToGuiBatch parses a JSON array of tagged envelopes back into a
// ToGui batch, preserving order.
func DecodeToGuiBatch(data []byte) ([]ToGui, error) {
	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, err
	}
	out := make([]ToGui, 0, len(envs))
	for _, env := range envs {
		m, err := decodeToGui(env)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func decodeToGui(env envelope) (ToGui, error) {
	var (
		m   ToGui
		err error
	)
	switch env.Type {
	case tagAddButton:
		var v AddButton
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagAddToggle:
		var v AddToggle
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagAddNumber:
		var v AddNumber
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagAddRangedNumber:
		var v AddRangedNumber
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagAddEnum:
		var v AddEnum
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagAddPanel2D:
		var v AddPanel2D
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagAddPanel3D:
		var v AddPanel3D
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagPlaceEntity:
		var v PlaceEntity
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagUpdateEntityPose:
		var v UpdateEntityPose
		err = json.Unmarshal(env.Data, &v)
		m = v
	case tagDeleteComponent:
		var v DeleteComponent
		err = json.Unmarshal(env.Data, &v)
		m = v
	default:
		return nil, fmt.Errorf("unknown ToGui tag %q", env.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Type, err)
	}
	return m, nil
}

// EncodeFromGuiBatch serializes a FromGui batch as a JSON array of
// tagged envelopes, in order.
func EncodeFromGuiBatch(batch []FromGui) ([]byte, error) {
	envs := make([]envelope, 0, len(batch))
	for _, m := range batch {
		tag, err := fromGuiTag(m)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", tag, err)
		}
		envs = append(envs, envelope{Type: tag, Data: data})
	}
	return json.Marshal(envs)
}

// DecodeFromGuiBatch parses a JSON array of tagged envelopes back into a
// FromGui batch, preserving order.
func DecodeFromGuiBatch(data []byte) ([]FromGui, error) {
	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, err
	}
	out := make([]FromGui, 0, len(envs))
	for _, env := range envs {
		var (
			m   FromGui
			err error
		)
		switch env.Type {
		case tagButtonPressed:
			var v ButtonPressed
			err = json.Unmarshal(env.Data, &v)
			m = v
		case tagToggleChanged:
			var v ToggleChanged
			err = json.Unmarshal(env.Data, &v)
			m = v
		case tagRangedChanged:
			var v RangedChanged
			err = json.Unmarshal(env.Data, &v)
			m = v
		case tagEnumChanged:
			var v EnumChanged
			err = json.Unmarshal(env.Data, &v)
			m = v
		default:
			return nil, fmt.Errorf("unknown FromGui tag %q", env.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Type, err)
		}
		out = append(out, m)
	}
	return out, nil
}
