package shaders

// Terrain strip-mesh shaders. The fragment shader bands color by raw world
// height: water, sand, grass, rock, snow.

const terrainVertexShader = `
#version 330 core
layout(location = 0) in vec3 position;
out float vHeight;
uniform mat4 mvp;
void main() {
    gl_Position = mvp * vec4(position, 1.0);
    vHeight = position.y;
}
`

const terrainFragmentShader = `
#version 330 core
in float vHeight;
out vec4 fragColor;
void main() {
    // Normalize height from [-10..10] to [0..1] for banding
    float h = clamp((vHeight + 10.0) / 20.0, 0.0, 1.0);

    vec3 color;
    if (h < 0.3)       color = vec3(0.0, 0.0, 0.8);   // deep water
    else if (h < 0.4)  color = vec3(0.0, 0.5, 1.0);   // shallow water
    else if (h < 0.5)  color = vec3(0.9, 0.85, 0.6);  // beach
    else if (h < 0.7)  color = vec3(0.1, 0.6, 0.1);   // grass
    else if (h < 0.9)  color = vec3(0.5, 0.4, 0.3);   // rock
    else               color = vec3(1.0, 1.0, 1.0);   // snow

    fragColor = vec4(color, 1.0);
}
`

// CompileTerrainProgram builds the terrain shader program. The individual
// shaders are deleted once linked.
func CompileTerrainProgram() (uint32, error) {
	return buildProgram(terrainVertexShader, terrainFragmentShader)
}
