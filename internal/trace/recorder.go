package trace

import "reflect"

// Recorder is the append-only step log a strategy writes to.
//
// Record snapshots the payload at call time: maps, slices, arrays, pointers and
// structs reachable from it are copied, so mutating a running edge list or a
// distance map after recording never rewrites an earlier Step.
type Recorder struct {
	steps []Step
}

func NewRecorder() *Recorder {
	return &Recorder{steps: make([]Step, 0, 64)}
}

func (r *Recorder) Record(kind Kind, description string, payload Payload) {
	r.steps = append(r.steps, Step{
		Kind:        kind,
		Description: description,
		Payload:     snapshotPayload(payload),
	})
}

func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded sequence in emission order. The slice is a copy;
// the payloads are owned by the recorder and must be treated as read-only.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

func snapshotPayload(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = Snapshot(v)
	}
	return out
}

// Snapshot returns a deep copy of v.
func Snapshot(v any) any {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Elem().Type())
		out.Elem().Set(deepCopy(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			f := out.Field(i)
			if !f.CanSet() {
				continue
			}
			f.Set(deepCopy(v.Field(i)))
		}
		return out
	default:
		return v
	}
}
