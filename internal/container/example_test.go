package container_test

import (
	"fmt"

	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/pathmap"
)

func ExampleParsePortMapping() {
	pm, err := container.ParsePortMapping("8080:80")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("host=%d container=%d\n", pm.Host, pm.Container)
	// Output: host=8080 container=80
}

func ExampleMountLayout_Mounts() {
	layout := container.MountLayout{
		Platform:   pathmap.PlatformWindows,
		Convention: pathmap.ConventionMnt,
		Drives:     []string{"C", "D"},
	}
	for _, m := range layout.Mounts() {
		fmt.Printf("%s -> %s\n", m.Source, m.Target)
	}
	// Output:
	// C:\ -> /mnt/c
	// D:\ -> /mnt/d
}

func ExampleToDockerFormat() {
	specs := container.ToDockerFormat([]container.VolumeMount{
		{Source: "/home/alice", Target: "/home/alice"},
		{Source: "/etc/gitconfig", Target: "/etc/gitconfig", ReadOnly: true},
	})
	for _, s := range specs {
		fmt.Println(s)
	}
	// Output:
	// /home/alice:/home/alice
	// /etc/gitconfig:/etc/gitconfig:ro
}
