package dashboard

import "strings"

type transition func(State, Action) (State, []Effect)

// transitions is the command dispatch table: one state transition per action kind.
var transitions = map[ActionKind]transition{
	KindSearch:           onSearch,
	KindRequestLocation:  onRequestLocation,
	KindLocationResolved: onLocationResolved,
	KindLocationFailed:   onLocationFailed,
	KindSwitchUnit:       onSwitchUnit,
	KindWeatherLoaded:    onWeatherLoaded,
	KindWeatherFailed:    onWeatherFailed,
	KindDismissError:     onDismissError,
}

// Reduce applies a to s and returns the next state plus the effects to run.
// Unknown actions leave the state untouched.
func Reduce(s State, a Action) (State, []Effect) {
	if a == nil {
		return s, nil
	}
	fn, ok := transitions[a.Kind()]
	if !ok {
		return s, nil
	}
	return fn(s, a)
}

func onSearch(s State, a Action) (State, []Effect) {
	city := strings.TrimSpace(a.(Search).City)
	if city == "" {
		return s, nil
	}
	s.City = city
	s.Loading = true
	return s, []Effect{FetchCity{City: city}}
}

func onRequestLocation(s State, _ Action) (State, []Effect) {
	s.Loading = true
	return s, []Effect{LocateDevice{}}
}

func onLocationResolved(s State, a Action) (State, []Effect) {
	pos := a.(LocationResolved)
	s.Loading = true
	return s, []Effect{FetchCoords{Lat: pos.Lat, Lon: pos.Lon}}
}

func onLocationFailed(s State, a Action) (State, []Effect) {
	s.Loading = false
	s.Err = locationErrorMessage(a.(LocationFailed).Err)
	return s, nil
}

func onSwitchUnit(s State, a Action) (State, []Effect) {
	unit := a.(SwitchUnit).Unit
	if !unit.Valid() || unit == s.Unit {
		return s, nil
	}
	s.Unit = unit
	return s, nil
}

// onWeatherLoaded always overwrites: the last response to arrive wins, whatever the request order.
func onWeatherLoaded(s State, a Action) (State, []Effect) {
	loaded := a.(WeatherLoaded)
	snap := loaded.Snapshot
	s.Loading = false
	s.Data = &snap
	if loaded.ByCoords && snap.Current.City != "" {
		s.City = snap.Current.City
	}
	return s, nil
}

func onWeatherFailed(s State, a Action) (State, []Effect) {
	failed := a.(WeatherFailed)
	s.Loading = false
	s.Err = weatherErrorMessage(failed.Err, failed.ByCoords)
	return s, nil
}

func onDismissError(s State, _ Action) (State, []Effect) {
	s.Err = ""
	return s, nil
}
