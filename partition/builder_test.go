package partition_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/diagcanon/attrset"
	"github.com/katalvlaran/diagcanon/partition"
)

func red() attrset.Set  { return attrset.Set{"color": attrset.String("red")} }
func blue() attrset.Set { return attrset.Set{"color": attrset.String("blue")} }

func TestBuild_GroupsAndOrdersDeterministically(t *testing.T) {
	colors := []attrset.Set{red(), blue(), red(), blue()}
	p, err := partition.Build(colors, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Lab) != 4 || len(p.Ptn) != 4 {
		t.Fatalf("unexpected lengths: lab=%v ptn=%v", p.Lab, p.Ptn)
	}
	// blue < red lexicographically, so the blue cell {1,3} comes first.
	wantLab := []int{1, 3, 0, 2}
	wantPtn := []int{1, 0, 1, 0}
	if !reflect.DeepEqual(p.Lab, wantLab) {
		t.Errorf("Lab = %v, want %v", p.Lab, wantLab)
	}
	if !reflect.DeepEqual(p.Ptn, wantPtn) {
		t.Errorf("Ptn = %v, want %v", p.Ptn, wantPtn)
	}
}

func TestBuild_SortConditionPrioritizesMatches(t *testing.T) {
	colors := []attrset.Set{
		{"ext": attrset.Bool(false), "color": attrset.String("black")}, // 0
		{"ext": attrset.Bool(true), "color": attrset.String("red")},    // 1
		{"ext": attrset.Bool(true), "color": attrset.String("green")},  // 2
	}
	conds := []partition.SortCondition{{Key: "ext", Target: attrset.Bool(true)}}
	p, err := partition.Build(colors, conds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Both ext=true cells must precede the ext=false cell regardless of
	// their color's lexicographic rank (green < red but both precede black).
	lastExtTruePos := -1
	for pos, v := range p.Lab {
		if v == 1 || v == 2 {
			lastExtTruePos = pos
		}
	}
	firstExtFalsePos := -1
	for pos, v := range p.Lab {
		if v == 0 {
			firstExtFalsePos = pos
			break
		}
	}
	if lastExtTruePos >= firstExtFalsePos {
		t.Fatalf("ext=true cells must all precede ext=false cell: lab=%v", p.Lab)
	}
}

func TestBuild_SingleCellWhenUniformColor(t *testing.T) {
	colors := []attrset.Set{red(), red(), red()}
	p, err := partition.Build(colors, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantPtn := []int{1, 1, 0}
	if !reflect.DeepEqual(p.Ptn, wantPtn) {
		t.Errorf("Ptn = %v, want %v", p.Ptn, wantPtn)
	}
}

func TestBuild_Empty(t *testing.T) {
	p, err := partition.Build(nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Lab) != 0 || len(p.Ptn) != 0 {
		t.Fatalf("expected empty partition, got %+v", p)
	}
}
