package vm_test

import (
	"testing"

	"basedchecker/internal/compiler"
	"basedchecker/internal/vm"
)

func compileOrFail(t *testing.T, lines []string) *vm.Program {
	t.Helper()
	prog, verr := compiler.Compile(lines)
	if verr != nil {
		t.Fatalf("compile failed: %s", verr)
	}
	return prog
}

func TestAddAndOutput(t *testing.T) {
	prog := compileOrFail(t, []string{
		"yoink x",
		"*slaps 10 on top of x*",
		"yeet x",
		"go touch some grass",
	})
	prog.PushInput(vm.Integer(5))
	if verr := vm.Run(prog, 1_000_000); verr != nil {
		t.Fatalf("unexpected verdict: %s", *verr)
	}
	out, ok := prog.PopOutput()
	if !ok || out.Int != 15 {
		t.Errorf("got %+v, ok=%v", out, ok)
	}
}

func TestCompareSkipsNextInstructionWhenNotGreater(t *testing.T) {
	prog := compileOrFail(t, []string{
		"vibe check 1 ratios 2",
		"yeet 100",
		"yeet 200",
		"go touch some grass",
	})
	if verr := vm.Run(prog, 1_000_000); verr != nil {
		t.Fatalf("unexpected verdict: %s", *verr)
	}
	out, ok := prog.PopOutput()
	if !ok || out.Int != 200 {
		t.Errorf("expected the skip to land on 200, got %+v ok=%v", out, ok)
	}
}

func TestJumpIsOneBasedAbsolute(t *testing.T) {
	prog := compileOrFail(t, []string{
		"simp for 4",
		"yeet 1",
		"yeet 2",
		"go touch some grass",
	})
	if verr := vm.Run(prog, 1_000_000); verr != nil {
		t.Fatalf("unexpected verdict: %s", *verr)
	}
	if prog.HasOutput() {
		t.Error("jumping past the yeet lines should produce no output")
	}
}

func TestFallingOffTheEndIsARuntimeError(t *testing.T) {
	prog := compileOrFail(t, []string{"yeet 1"})
	verr := vm.Run(prog, 1_000_000)
	if verr == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestNegativeArrayIndexFailsCleanly(t *testing.T) {
	prog := compileOrFail(t, []string{
		"yoink n",
		"yoink arr",
		"yoink i",
		"yeet arr[i]",
		"go touch some grass",
	})
	prog.PushInput(vm.Integer(3))
	prog.PushInput(vm.Array([]int64{1, 2, 3}))
	prog.PushInput(vm.Integer(-1))
	verr := vm.Run(prog, 1_000_000)
	if verr == nil {
		t.Fatal("expected a runtime error for a negative index")
	}
}

func TestTimeLimitExceeded(t *testing.T) {
	prog := compileOrFail(t, []string{
		"simp for 1",
	})
	verr := vm.Run(prog, 5)
	if verr == nil {
		t.Fatal("expected a time limit error")
	}
	if verr.Kind.String() != "TimeLimitExceeded" {
		t.Errorf("got %s", verr.Kind)
	}
}

func TestCloneResetsEnvironmentButSharesInstructions(t *testing.T) {
	prog := compileOrFail(t, []string{
		"yoink x",
		"go touch some grass",
	})
	prog.PushInput(vm.Integer(1))
	if verr := vm.Run(prog, 1_000_000); verr != nil {
		t.Fatalf("unexpected verdict: %s", *verr)
	}

	clone := prog.Clone()
	if clone.Returned() {
		t.Error("a clone should start unreturned")
	}
	if len(clone.Instructions) != len(prog.Instructions) {
		t.Error("a clone should share the same instruction sequence")
	}
}
