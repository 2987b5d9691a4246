package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mstarongithub/driftwc/render"
	"github.com/mstarongithub/driftwc/render/rendertest"
)

func TestErrorKindMatching(t *testing.T) {
	err := render.NewError(render.KindTextureUpload, "mmap failed")
	if !errors.Is(err, &render.Error{Kind: render.KindTextureUpload}) {
		t.Errorf("errors.Is failed to match the kind")
	}
	if errors.Is(err, &render.Error{Kind: render.KindPresentation}) {
		t.Errorf("errors.Is matched the wrong kind")
	}

	cause := errors.New("drm: device gone")
	wrapped := render.NewBackendError("page flip", cause)
	if !errors.Is(wrapped, cause) {
		t.Errorf("Unwrap chain lost the cause")
	}

	var re *render.Error
	if !errors.As(wrapped, &re) || re.Kind != render.KindBackendSpecific {
		t.Errorf("errors.As failed: %v", wrapped)
	}
}

func TestShaderErrorMessage(t *testing.T) {
	err := render.NewShaderError("fragment", "syntax error at line 3")
	want := "shader (fragment) compilation failed: syntax error at line 3"
	if err.Error() != want {
		t.Errorf("Got %q, want %q", err.Error(), want)
	}
}

func TestFakeTextureLifecycle(t *testing.T) {
	ctx := context.Background()
	fake := rendertest.NewFake()

	shm, err := fake.CreateTextureFromShm(ctx, &render.ShmBuffer{
		Width: 640, Height: 480, Stride: 640 * 4, Format: render.FormatARGB8888,
	})
	if err != nil {
		t.Fatalf("Shm import failed: %v", err)
	}
	if shm.Width() != 640 || shm.Height() != 480 || !shm.HasAlpha() {
		t.Errorf("Bad shm texture: %dx%d alpha=%v", shm.Width(), shm.Height(), shm.HasAlpha())
	}
	if shm.BufferKind() != render.BufferKindShm {
		t.Errorf("Wrong buffer kind %s", shm.BufferKind())
	}

	dma, err := fake.CreateTextureFromDmabuf(ctx, &render.DmabufBuffer{
		Width: 1920, Height: 1080, Format: render.FormatXRGB8888, PlaneCount: 1,
	})
	if err != nil {
		t.Fatalf("Dmabuf import failed: %v", err)
	}
	if dma.BufferKind() != render.BufferKindDmabuf || dma.HasAlpha() {
		t.Errorf("Bad dmabuf texture: kind=%s alpha=%v", dma.BufferKind(), dma.HasAlpha())
	}
	if dma.ID() == shm.ID() {
		t.Errorf("Texture ids collide")
	}

	// Only the explicit release call frees the resource
	if fake.TextureCount() != 2 {
		t.Fatalf("Expected 2 live textures, got %d", fake.TextureCount())
	}
	if err := fake.ReleaseTexture(ctx, shm.ID()); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if fake.HasTexture(shm.ID()) {
		t.Errorf("Texture still alive after release")
	}
	// Releasing again is harmless
	if err := fake.ReleaseTexture(ctx, shm.ID()); err != nil {
		t.Errorf("Second release errored: %v", err)
	}
}

func TestFakeBadImports(t *testing.T) {
	ctx := context.Background()
	fake := rendertest.NewFake()

	_, err := fake.CreateTextureFromShm(ctx, &render.ShmBuffer{})
	if !errors.Is(err, &render.Error{Kind: render.KindTextureUpload}) {
		t.Errorf("Empty shm buffer should fail with texture upload, got %v", err)
	}

	_, err = fake.CreateTextureFromDmabuf(ctx, &render.DmabufBuffer{Width: 10, Height: 10})
	if !errors.Is(err, &render.Error{Kind: render.KindBufferImport}) {
		t.Errorf("Plane-less dmabuf should fail with buffer import, got %v", err)
	}
}

func TestFakeFrameLifecycle(t *testing.T) {
	ctx := context.Background()
	fake := rendertest.NewFake()
	opts := render.FrameOptions{
		Output:       1,
		PhysicalSize: render.Size{Width: 1920, Height: 1080},
		Scale:        render.Scale{X: 1, Y: 1},
	}

	frame, err := fake.BeginFrame(ctx, opts)
	if err != nil {
		t.Fatalf("BeginFrame failed: %v", err)
	}

	// Second frame on the same output while one is active is invalid
	_, err = fake.BeginFrame(ctx, opts)
	if !errors.Is(err, &render.Error{Kind: render.KindInvalidOperation}) {
		t.Errorf("Overlapping BeginFrame should be invalid, got %v", err)
	}

	// A different output can have its own frame in flight
	other, err := fake.BeginFrame(ctx, render.FrameOptions{Output: 2, PhysicalSize: render.Size{Width: 1280, Height: 720}})
	if err != nil {
		t.Fatalf("Concurrent frame on another output failed: %v", err)
	}

	err = frame.RenderElements(ctx, []render.Element{
		render.SolidColorElement{Color: render.Color{R: 0.1, A: 1}, Geometry: render.Rect{Width: 1920, Height: 1080}},
	})
	if err != nil {
		t.Fatalf("RenderElements failed: %v", err)
	}
	err = frame.RenderElements(ctx, []render.Element{
		render.SolidColorElement{Color: render.Color{G: 1, A: 1}, Geometry: render.Rect{Width: 100, Height: 100}},
	})
	if err != nil {
		t.Fatalf("Second RenderElements failed: %v", err)
	}

	if _, err := frame.Finish(ctx); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if _, err := other.Finish(ctx); err != nil {
		t.Fatalf("Finish of second output failed: %v", err)
	}

	// Submission order survives into the record
	completed := fake.CompletedFrames()
	if len(completed) != 2 {
		t.Fatalf("Expected 2 completed frames, got %d", len(completed))
	}
	if len(completed[0].Elements) != 2 {
		t.Errorf("Expected 2 recorded elements, got %d", len(completed[0].Elements))
	}

	// The output is free again after Finish
	if _, err := fake.BeginFrame(ctx, opts); err != nil {
		t.Errorf("BeginFrame after Finish failed: %v", err)
	}
}

func TestFakeFrameMisuse(t *testing.T) {
	ctx := context.Background()
	fake := rendertest.NewFake()

	frame, err := fake.BeginFrame(ctx, render.FrameOptions{Output: 1})
	if err != nil {
		t.Fatalf("BeginFrame failed: %v", err)
	}
	if _, err := frame.Finish(ctx); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	err = frame.RenderElements(ctx, []render.Element{render.SolidColorElement{}})
	if !errors.Is(err, &render.Error{Kind: render.KindInvalidOperation}) {
		t.Errorf("Render into finished frame should be invalid, got %v", err)
	}
	if _, err := frame.Finish(ctx); !errors.Is(err, &render.Error{Kind: render.KindInvalidOperation}) {
		t.Errorf("Double finish should be invalid, got %v", err)
	}
}

func TestFakeCancelledContext(t *testing.T) {
	fake := rendertest.NewFake()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fake.BeginFrame(ctx, render.FrameOptions{Output: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Cancelled BeginFrame should wrap ctx.Err(), got %v", err)
	}
	var re *render.Error
	if !errors.As(err, &re) || re.Kind != render.KindBackendSpecific {
		t.Errorf("Cancellation should surface as a backend-specific error, got %v", err)
	}
}

func TestFakeFailureInjection(t *testing.T) {
	ctx := context.Background()
	fake := rendertest.NewFake()
	fake.FailFinish = render.NewError(render.KindPresentation, "page flip rejected")

	frame, err := fake.BeginFrame(ctx, render.FrameOptions{Output: 1})
	if err != nil {
		t.Fatalf("BeginFrame failed: %v", err)
	}
	if _, err := frame.Finish(ctx); !errors.Is(err, &render.Error{Kind: render.KindPresentation}) {
		t.Errorf("Injected presentation failure not surfaced, got %v", err)
	}

	// A failed finish still releases the output for the next frame
	fake.FailFinish = nil
	if _, err := fake.BeginFrame(ctx, render.FrameOptions{Output: 1}); err != nil {
		t.Errorf("Output still blocked after failed finish: %v", err)
	}
}
