package main

var sceneVertexShader = `
#version 410 core
uniform mat4 ViewProjection;

layout(location = 0) in vec4 vposition;
layout(location = 1) in vec4 vcolor;

out vec4 fcolor;

void main() {
	fcolor = vcolor;
	gl_Position = ViewProjection * vposition;
}
`

// The luma is stored in alpha for the FXAA pass, so the scene must not
// use blending.
var sceneFragmentShader = `
#version 410 core
in vec4 fcolor;

layout(location = 0) out vec4 FragColor;

void main() {
	FragColor = vec4(fcolor.rgb, dot(fcolor.rgb, vec3(0.299, 0.587, 0.114)));
}
`

var fxaaVertexShader = `
#version 410 core
layout(location = 0) in vec4 vposition;
layout(location = 1) in vec2 vtexcoord;

out vec2 ftexcoord;

void main() {
	ftexcoord = vtexcoord;
	gl_Position = vposition;
}
`

// FXAA 3.11 by Timothy Lottes, PC quality preset 13, with luma in alpha.
var fxaaFragmentShader = `
#version 410 core
uniform sampler2D intexture;

in vec2 ftexcoord;

layout(location = 0) out vec4 FragColor;

const float Subpix = 0.75;
const float EdgeThreshold = 0.166;
const float EdgeThresholdMin = 0.0625;

// search step multipliers after the first step of 1.5
const int SearchSteps = 4;
const float SearchStep[SearchSteps] = float[](2.0, 2.0, 4.0, 12.0);

float luma(vec4 rgba) { return rgba.w; }

float lumaAt(sampler2D tex, vec2 pos, ivec2 offset) {
	return luma(textureLodOffset(tex, pos, 0.0, offset));
}

vec4 fxaa(vec2 pos, sampler2D tex, vec2 rcpFrame) {
	vec2 posM = pos;
	vec4 rgbyM = textureLod(tex, posM, 0.0);
	float lumaM = rgbyM.w;

	float lumaS = lumaAt(tex, posM, ivec2( 0, 1));
	float lumaE = lumaAt(tex, posM, ivec2( 1, 0));
	float lumaN = lumaAt(tex, posM, ivec2( 0,-1));
	float lumaW = lumaAt(tex, posM, ivec2(-1, 0));

	float rangeMax = max(max(lumaN, lumaW), max(lumaE, max(lumaS, lumaM)));
	float rangeMin = min(min(lumaN, lumaW), min(lumaE, min(lumaS, lumaM)));
	float range = rangeMax - rangeMin;
	if(range < max(EdgeThresholdMin, rangeMax * EdgeThreshold)) {
		return rgbyM;
	}

	float lumaNW = lumaAt(tex, posM, ivec2(-1,-1));
	float lumaSE = lumaAt(tex, posM, ivec2( 1, 1));
	float lumaNE = lumaAt(tex, posM, ivec2( 1,-1));
	float lumaSW = lumaAt(tex, posM, ivec2(-1, 1));

	float lumaNS = lumaN + lumaS;
	float lumaWE = lumaW + lumaE;
	float lumaNESE = lumaNE + lumaSE;
	float lumaNWNE = lumaNW + lumaNE;
	float lumaNWSW = lumaNW + lumaSW;
	float lumaSWSE = lumaSW + lumaSE;

	float edgeHorz = abs(-2.0 * lumaW + lumaNWSW)
		+ abs(-2.0 * lumaM + lumaNS) * 2.0
		+ abs(-2.0 * lumaE + lumaNESE);
	float edgeVert = abs(-2.0 * lumaS + lumaSWSE)
		+ abs(-2.0 * lumaM + lumaWE) * 2.0
		+ abs(-2.0 * lumaN + lumaNWNE);
	bool horzSpan = edgeHorz >= edgeVert;

	float subpixA = (lumaNS + lumaWE) * 2.0 + lumaNWSW + lumaNESE;
	float subpixB = subpixA * (1.0/12.0) - lumaM;
	float subpixC = clamp(abs(subpixB) / range, 0.0, 1.0);
	float subpixF = (-2.0 * subpixC + 3.0) * subpixC * subpixC;
	float subpixH = subpixF * subpixF * Subpix;

	float lengthSign = rcpFrame.x;
	if(!horzSpan) {
		lumaN = lumaW;
		lumaS = lumaE;
	} else {
		lengthSign = rcpFrame.y;
	}

	float gradientN = lumaN - lumaM;
	float gradientS = lumaS - lumaM;
	bool pairN = abs(gradientN) >= abs(gradientS);
	float gradientScaled = max(abs(gradientN), abs(gradientS)) / 4.0;
	if(pairN) {
		lengthSign = -lengthSign;
	}
	float lumaNN = (pairN ? lumaN : lumaS) + lumaM;

	vec2 posB = posM;
	vec2 offNP = horzSpan ? vec2(rcpFrame.x, 0.0) : vec2(0.0, rcpFrame.y);
	if(horzSpan) {
		posB.y += lengthSign * 0.5;
	} else {
		posB.x += lengthSign * 0.5;
	}

	vec2 posN = posB - offNP;
	vec2 posP = posB + offNP;
	float lumaEndN = luma(textureLod(tex, posN, 0.0)) - lumaNN * 0.5;
	float lumaEndP = luma(textureLod(tex, posP, 0.0)) - lumaNN * 0.5;
	bool doneN = abs(lumaEndN) >= gradientScaled;
	bool doneP = abs(lumaEndP) >= gradientScaled;
	if(!doneN) posN -= offNP * 1.5;
	if(!doneP) posP += offNP * 1.5;

	for(int i = 0; i < SearchSteps && !(doneN && doneP); i++) {
		if(!doneN) lumaEndN = luma(textureLod(tex, posN, 0.0)) - lumaNN * 0.5;
		if(!doneP) lumaEndP = luma(textureLod(tex, posP, 0.0)) - lumaNN * 0.5;
		doneN = abs(lumaEndN) >= gradientScaled;
		doneP = abs(lumaEndP) >= gradientScaled;
		if(!doneN) posN -= offNP * SearchStep[i];
		if(!doneP) posP += offNP * SearchStep[i];
	}

	float dstN = horzSpan ? posM.x - posN.x : posM.y - posN.y;
	float dstP = horzSpan ? posP.x - posM.x : posP.y - posM.y;

	bool lumaMLTZero = lumaM - lumaNN * 0.5 < 0.0;
	bool goodSpanN = (lumaEndN < 0.0) != lumaMLTZero;
	bool goodSpanP = (lumaEndP < 0.0) != lumaMLTZero;
	bool goodSpan = dstN < dstP ? goodSpanN : goodSpanP;

	float pixelOffset = -min(dstN, dstP) / (dstP + dstN) + 0.5;
	float pixelOffsetSubpix = max(goodSpan ? pixelOffset : 0.0, subpixH);
	if(horzSpan) {
		posM.y += pixelOffsetSubpix * lengthSign;
	} else {
		posM.x += pixelOffsetSubpix * lengthSign;
	}

	return vec4(textureLod(tex, posM, 0.0).xyz, lumaM);
}

void main() {
	FragColor = fxaa(ftexcoord, intexture, 1.0 / vec2(textureSize(intexture, 0)));
}
`
