package lights

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestLight_ShadowRayReachesLightAtOne(t *testing.T) {
	light := NewPointLight(core.NewVec3(-0.8, 0.8, 0), core.NewVec3(1, 0, 0), 0.7)
	p := core.NewVec3(0.3, -1.8, -4)

	ray := light.ShadowRay(p)
	if ray.Origin != p {
		t.Errorf("Expected shadow ray origin %v, got %v", p, ray.Origin)
	}
	if end := ray.At(1); !end.ApproxEqual(light.Position, 1e-12) {
		t.Errorf("Expected At(1) = %v, got %v", light.Position, end)
	}
}

func TestLight_DirectionFrom(t *testing.T) {
	light := NewWhiteLight(core.NewVec3(0, 10, 0))
	dir := light.DirectionFrom(core.NewVec3(0, 0, 0))
	if !dir.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected (0, 1, 0), got %v", dir)
	}
}

func TestLight_Radiance(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 0.5, 0), 0.5)

	if got := light.Radiance(false); got != light.Color {
		t.Errorf("Expected unscaled radiance %v, got %v", light.Color, got)
	}
	if got := light.Radiance(true); got != core.NewVec3(0.5, 0.25, 0) {
		t.Errorf("Expected scaled radiance (0.5, 0.25, 0), got %v", got)
	}
}

func TestLight_SpotIlluminates(t *testing.T) {
	spot := NewSpotLight(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), 30, core.Splat(1), 1)

	tests := []struct {
		name     string
		point    core.Vec3
		expected bool
	}{
		{"straight below", core.NewVec3(0, 0, 0), true},
		{"inside the cone", core.NewVec3(0.5, 0, 0), true},
		{"outside the cone", core.NewVec3(2, 0, 0), false},
		{"behind the light", core.NewVec3(0, 4, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spot.Illuminates(tt.point); got != tt.expected {
				t.Errorf("Illuminates(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}

	if !NewWhiteLight(core.NewVec3(0, 2, 0)).Illuminates(core.NewVec3(2, 0, 0)) {
		t.Error("Expected a point light to reach every point")
	}
}

func TestLight_Directional(t *testing.T) {
	sun := NewDirectionalLight(core.NewVec3(0, -2, 0), core.Splat(1), 1)
	p := core.NewVec3(3, 0, -1)

	if dir := sun.DirectionFrom(p); !dir.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected (0, 1, 0) toward the light, got %v", dir)
	}
	ray := sun.ShadowRay(p)
	if ray.Origin != p || !ray.Direction.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Unexpected shadow ray %+v", ray)
	}
	if !math.IsInf(sun.ShadowRange(), 1) {
		t.Errorf("Expected unbounded shadow range, got %f", sun.ShadowRange())
	}
	if r := NewWhiteLight(core.NewVec3(0, 1, 0)).ShadowRange(); r != 1 {
		t.Errorf("Expected point light shadow range 1, got %f", r)
	}
}

func TestLight_Validate(t *testing.T) {
	tests := []struct {
		name    string
		light   Light
		wantErr bool
	}{
		{"point", NewWhiteLight(core.NewVec3(0, 1, 0)), false},
		{"spot", NewSpotLight(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 45, core.Splat(1), 1), false},
		{"directional", NewDirectionalLight(core.NewVec3(1, -1, 0), core.Splat(1), 1), false},
		{"zero spot angle", NewSpotLight(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0, core.Splat(1), 1), true},
		{"wide spot angle", NewSpotLight(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 180, core.Splat(1), 1), true},
		{"zero direction", NewDirectionalLight(core.Vec3{}, core.Splat(1), 1), true},
		{"unknown type", Light{Type: Type(7)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.light.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestType_String(t *testing.T) {
	for typ, want := range map[Type]string{Point: "point", Spot: "spot", Directional: "directional", Type(9): "unknown"} {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}
