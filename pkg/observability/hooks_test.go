package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "table.toml")
	p.OnLoadComplete(ctx, "table.toml", time.Second, nil)
	p.OnRenderStart(ctx, "Electronegativity")
	p.OnRenderComplete(ctx, 103, time.Second, nil)
	p.OnExportStart(ctx, []string{"svg"})
	p.OnExportComplete(ctx, []string{"svg"}, 2048, time.Second, nil)

	io := NoopIOHooks{}
	io.OnRead(ctx, "data.json", 128, nil)
	io.OnWrite(ctx, "table.svg", 2048, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := IO().(NoopIOHooks); !ok {
		t.Error("IO() should return NoopIOHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customIO := &testIOHooks{}
	SetIOHooks(customIO)
	if IO() != customIO {
		t.Error("SetIOHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := IO().(NoopIOHooks); !ok {
		t.Error("Reset() should restore NoopIOHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetIOHooks(&testIOHooks{})
		}()
		go func() {
			defer wg.Done()
			IO().OnWrite(context.Background(), "x", 1, nil)
		}()
	}
	wg.Wait()
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testIOHooks struct{ NoopIOHooks }
